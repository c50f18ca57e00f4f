// Package report renders the expense log for export.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"billsplit/internal/models"
)

// Header is the first row of every export.
var Header = []string{"payer", "title", "category", "amount", "split_type"}

// Rows converts the expense log to export rows in insertion order.
func Rows(expenses []models.Expense) [][]string {
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.Payer,
			e.Title,
			e.Category,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			string(e.Split),
		})
	}
	return rows
}

// WriteCSV writes the header and all expense rows to w.
func WriteCSV(w io.Writer, expenses []models.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range Rows(expenses) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
