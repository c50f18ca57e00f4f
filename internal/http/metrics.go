package http

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	expensesApplied   *prometheus.CounterVec
	expensesRejected  prometheus.Counter
	settlementRuns    prometheus.Counter
	scans             prometheus.Counter
	scanParseFailures prometheus.Counter
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		expensesApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "billsplit_expenses_applied_total",
			Help: "Expenses applied to the ledger, by split type.",
		}, []string{"split_type"}),
		expensesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "billsplit_expenses_rejected_total",
			Help: "Expense submissions rejected by validation.",
		}),
		settlementRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "billsplit_settlements_computed_total",
			Help: "Settlement plans computed.",
		}),
		scans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "billsplit_scans_total",
			Help: "Receipt scan requests processed.",
		}),
		scanParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "billsplit_scan_parse_failures_total",
			Help: "Price candidates that failed to parse during extraction.",
		}),
	}
	reg.MustRegister(
		m.expensesApplied,
		m.expensesRejected,
		m.settlementRuns,
		m.scans,
		m.scanParseFailures,
	)
	return m
}
