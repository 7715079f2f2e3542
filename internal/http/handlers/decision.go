package handlers

import (
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/sha3"

	"github.com/AxZethh/inbank-backend/internal/domain/decision"
	"github.com/AxZethh/inbank-backend/internal/observability"
)

type DecisionEngine interface {
	Evaluate(req decision.Request) (decision.Decision, error)
}

type decisionRequest struct {
	PersonalCode string `json:"personalCode"`
	LoanAmount   int    `json:"loanAmount"`
	LoanPeriod   int    `json:"loanPeriod"`
	Country      string `json:"country"`
	Age          int    `json:"age"`
}

type decisionResponse struct {
	LoanAmount   *int   `json:"loanAmount"`
	LoanPeriod   *int   `json:"loanPeriod"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

type DecisionHandler struct {
	engine DecisionEngine
	logger *slog.Logger
}

func NewDecisionHandler(engine DecisionEngine, logger *slog.Logger) *DecisionHandler {
	return &DecisionHandler{engine: engine, logger: logger}
}

// RequestDecision evaluates one loan application. Validation failures
// map to 400, no-valid-loan outcomes to 404, anything else to 500 with
// a generic message.
func (h *DecisionHandler) RequestDecision(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		observability.DecisionsTotal.WithLabelValues(observability.OutcomeRejected).Inc()
		c.JSON(http.StatusBadRequest, decisionResponse{ErrorMessage: "invalid request body"})
		return
	}

	start := time.Now()
	d, err := h.engine.Evaluate(decision.Request{
		PersonalCode: req.PersonalCode,
		LoanAmount:   req.LoanAmount,
		LoanPeriod:   req.LoanPeriod,
		Country:      req.Country,
		Age:          req.Age,
	})
	observability.DecisionDuration.Observe(time.Since(start).Seconds())

	logArgs := []any{
		"personal_code_hash", hashPersonalCode(req.PersonalCode),
		"amount", req.LoanAmount,
		"period", req.LoanPeriod,
		"country", req.Country,
	}

	if err == nil {
		observability.DecisionsTotal.WithLabelValues(observability.OutcomeApproved).Inc()
		h.logger.Info("loan approved", append(logArgs, "approved_amount", d.LoanAmount, "approved_period", d.LoanPeriod)...)
		c.JSON(http.StatusOK, decisionResponse{LoanAmount: &d.LoanAmount, LoanPeriod: &d.LoanPeriod})
		return
	}

	var noLoan *decision.NoValidLoanError
	switch {
	case decision.IsValidationError(err):
		observability.DecisionsTotal.WithLabelValues(observability.OutcomeRejected).Inc()
		h.logger.Info("loan request rejected", append(logArgs, "reason", err.Error())...)
		c.JSON(http.StatusBadRequest, decisionResponse{ErrorMessage: err.Error()})
	case errors.As(err, &noLoan):
		observability.DecisionsTotal.WithLabelValues(observability.OutcomeNoLoan).Inc()
		h.logger.Info("no valid loan", append(logArgs, "reason", noLoan.Reason)...)
		c.JSON(http.StatusNotFound, decisionResponse{ErrorMessage: noLoan.Reason})
	default:
		observability.DecisionsTotal.WithLabelValues(observability.OutcomeUnexpected).Inc()
		h.logger.Error("decision evaluation failed", append(logArgs, "err", err)...)
		c.JSON(http.StatusInternalServerError, decisionResponse{ErrorMessage: "An unexpected error occurred"})
	}
}

// hashPersonalCode digests the identity code so it never appears raw in
// logs.
func hashPersonalCode(code string) string {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte(code))
	return hex.EncodeToString(h.Sum(nil)[:8])
}
