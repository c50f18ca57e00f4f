package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"billsplit/internal/ledger"
	"billsplit/internal/models"
	"billsplit/internal/report"
	"billsplit/internal/scanner"
	"billsplit/internal/settle"
)

type createGroupRequest struct {
	Name    string   `json:"name" validate:"required"`
	Members []string `json:"members" validate:"required,min=1,dive,required"`
}

type itemPayload struct {
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gt=0"`
	Consumers   []string `json:"consumers"`
}

type addExpenseRequest struct {
	Title     string             `json:"title" validate:"required"`
	Amount    float64            `json:"amount" validate:"gt=0"`
	Payer     string             `json:"payer" validate:"required"`
	SplitType string             `json:"split_type" validate:"required,splittype"`
	Category  string             `json:"category"`
	Splits    map[string]float64 `json:"splits"`
	Items     []itemPayload      `json:"items" validate:"dive"`
}

type groupPayload struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type transactionPayload struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type expensePayload struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Payer    string  `json:"payer"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	group := s.ledger.CreateGroup(req.Name, req.Members)

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Group created",
		"group":    groupPayload{Name: group.Name, Members: group.Members},
		"balances": s.ledger.Balances(),
	})
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	items := make([]models.Item, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.Item{
			Description: item.Description,
			Price:       item.Price,
			Consumers:   item.Consumers,
		}
	}

	balances, err := s.ledger.ApplyExpense(ledger.ExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Payer:    req.Payer,
		Category: req.Category,
		Split:    models.SplitType(req.SplitType),
		Shares:   req.Splits,
		Items:    items,
	})
	if err != nil {
		s.metrics.expensesRejected.Inc()
		if errors.Is(err, ledger.ErrNoGroup) || ledger.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("Failed to apply expense", "error", err, "title", req.Title)
		writeError(w, http.StatusInternalServerError, "failed to apply expense")
		return
	}

	s.metrics.expensesApplied.WithLabelValues(req.SplitType).Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Expense added",
		"balances": balances,
	})
}

func (s *Server) handleCalculateBalance(w http.ResponseWriter, r *http.Request) {
	balances := s.ledger.Balances()
	plan := settle.Minimize(balances, s.ledger.Members())
	s.metrics.settlementRuns.Inc()

	transactions := make([]transactionPayload, len(plan))
	for i, t := range plan {
		transactions[i] = transactionPayload{From: t.From, To: t.To, Amount: t.Amount}
	}

	expenses := s.ledger.Expenses()
	expensePayloads := make([]expensePayload, len(expenses))
	for i, e := range expenses {
		expensePayloads[i] = expensePayload{
			ID:       e.ID,
			Title:    e.Title,
			Amount:   e.Amount,
			Payer:    e.Payer,
			Category: e.Category,
			Type:     string(e.Split),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"balances":     balances,
		"transactions": transactions,
		"expenses":     expensePayloads,
	})
}

func (s *Server) handleScanBill(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.scanMax)
	if err := r.ParseMultipartForm(s.scanMax); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file part")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.scanTimeout)
	defer cancel()

	result, err := scanner.Scan(ctx, s.ocr, image)
	if err != nil {
		slog.Error("Receipt scan failed", "error", err, "image_bytes", len(image))
		writeError(w, http.StatusBadGateway, "scan failed")
		return
	}

	s.metrics.scans.Inc()
	s.metrics.scanParseFailures.Add(float64(result.ParseFailures))

	slog.Info("Receipt scanned",
		"detected_total", result.DetectedTotal,
		"candidates_count", len(result.Candidates),
		"parse_failures", result.ParseFailures,
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"raw_text":       result.RawText,
		"detected_total": result.DetectedTotal,
		"all_found":      result.Candidates,
	})
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)

	if err := report.WriteCSV(w, s.ledger.Expenses()); err != nil {
		slog.Error("Failed to write expense report", "error", err)
	}
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
