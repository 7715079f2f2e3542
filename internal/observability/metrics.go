package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_decisions_total",
			Help: "Total number of loan decisions by outcome",
		},
		[]string{"outcome"},
	)

	DecisionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loan_decision_duration_seconds",
			Help:    "Duration of loan decision evaluation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)
)

// Outcome labels for DecisionsTotal.
const (
	OutcomeApproved   = "approved"
	OutcomeRejected   = "rejected"
	OutcomeNoLoan     = "no_valid_loan"
	OutcomeUnexpected = "unexpected_error"
)
