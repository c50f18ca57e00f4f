// Package http exposes the ledger, settlement engine and receipt scanner
// over a JSON HTTP API.
package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"billsplit/internal/config"
	"billsplit/internal/ledger"
	"billsplit/internal/scanner"
)

// Server wires the engine components to HTTP endpoints: group creation,
// expense submission, settlement computation, receipt scanning and CSV
// export.
type Server struct {
	ledger      *ledger.Ledger
	ocr         scanner.OCR
	scanMax     int64
	scanTimeout time.Duration
	registry    *prometheus.Registry
	metrics     *metrics
}

// NewServer creates a server around the given ledger and OCR client.
func NewServer(led *ledger.Ledger, ocr scanner.OCR, cfg *config.Config) *Server {
	registry := prometheus.NewRegistry()
	return &Server{
		ledger:      led,
		ocr:         ocr,
		scanMax:     cfg.ScanMaxBytes,
		scanTimeout: cfg.ScanTimeout,
		registry:    registry,
		metrics:     newMetrics(registry),
	}
}

// Handler returns the full route table wrapped in request logging and CORS
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /create-group", s.handleCreateGroup)
	mux.HandleFunc("POST /add-expense", s.handleAddExpense)
	mux.HandleFunc("GET /calculate-balance", s.handleCalculateBalance)
	mux.HandleFunc("POST /scan-bill", s.handleScanBill)
	mux.HandleFunc("GET /export-report", s.handleExportReport)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(corsMiddleware(mux))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
