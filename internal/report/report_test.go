package report

import (
	"bytes"
	"strings"
	"testing"

	"billsplit/internal/models"
)

func TestWriteCSV(t *testing.T) {
	expenses := []models.Expense{
		{Payer: "A", Title: "Dinner", Category: "Food", Amount: 90, Split: models.SplitEqual},
		{Payer: "B", Title: "Cab", Category: "General", Amount: 45.5, Split: models.SplitRatio},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, expenses); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := strings.Join([]string{
		"payer,title,category,amount,split_type",
		"A,Dinner,Food,90.00,equal",
		"B,Cab,General,45.50,ratio",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("CSV output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRowsPreserveInsertionOrder(t *testing.T) {
	expenses := []models.Expense{
		{Payer: "C", Title: "Third", Amount: 3, Split: models.SplitEqual},
		{Payer: "A", Title: "First", Amount: 1, Split: models.SplitEqual},
		{Payer: "B", Title: "Second", Amount: 2, Split: models.SplitEqual},
	}

	rows := Rows(expenses)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for i, wantTitle := range []string{"Third", "First", "Second"} {
		if rows[i][1] != wantTitle {
			t.Errorf("row %d title = %q, want %q", i, rows[i][1], wantTitle)
		}
	}
}
