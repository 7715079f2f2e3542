package decision

import (
	"math"
	"strconv"
	"strings"

	"github.com/AxZethh/inbank-backend/internal/config"
)

// Engine computes loan decisions from the immutable business
// constraints it was constructed with. It holds no mutable state, so a
// single instance is safe for concurrent use.
type Engine struct {
	constraints config.Constraints
	ageLimits   map[string]int
	validator   CodeValidator
}

func NewEngine(constraints config.Constraints, validator CodeValidator) *Engine {
	return &Engine{
		constraints: constraints,
		ageLimits:   constraints.AgeLimits(),
		validator:   validator,
	}
}

// Evaluate returns the approved loan amount and period for the request,
// or the first business-rule violation it encounters.
//
// The approved period is the smallest period, starting from the
// requested one, at which the applicant's credit score clears the
// minimum. The approved amount is the largest amount serviceable at
// that period, capped by the global maximum.
func (e *Engine) Evaluate(req Request) (Decision, error) {
	if err := e.verifyInputs(req); err != nil {
		return Decision{}, err
	}

	modifier, err := e.creditModifier(req.PersonalCode)
	if err != nil {
		return Decision{}, err
	}
	if modifier == 0 {
		return Decision{}, &NoValidLoanError{Reason: ReasonDebt}
	}

	// Skip periods too short to ever reach the minimum amount.
	period := req.LoanPeriod
	if floor := int(math.Ceil(float64(e.constraints.MinLoanAmount) / float64(modifier))); floor > period {
		period = floor
	}

	for e.creditScore(modifier, req.LoanAmount, period) < e.constraints.MinCreditScore && period < e.constraints.MaxLoanPeriod {
		period++
	}

	// Reachable only via the floor adjustment above; the loop itself
	// never pushes period past the ceiling.
	if period > e.constraints.MaxLoanPeriod {
		return Decision{}, &NoValidLoanError{Reason: ReasonNoValidPeriod}
	}

	amount := modifier * period
	if amount > e.constraints.MaxLoanAmount {
		amount = e.constraints.MaxLoanAmount
	}

	// The loop also exits when it hits the period ceiling with the
	// threshold still unmet; this catches that case.
	if e.creditScore(modifier, req.LoanAmount, period) < e.constraints.MinCreditScore {
		return Decision{}, &NoValidLoanError{Reason: ReasonScoreTooLow}
	}

	return Decision{LoanAmount: amount, LoanPeriod: period}, nil
}

func (e *Engine) verifyInputs(req Request) error {
	if !e.validator.IsValid(req.PersonalCode) {
		return ErrInvalidPersonalCode
	}
	if req.LoanAmount < e.constraints.MinLoanAmount || req.LoanAmount > e.constraints.MaxLoanAmount {
		return ErrInvalidLoanAmount
	}
	if req.LoanPeriod < e.constraints.MinLoanPeriod || req.LoanPeriod > e.constraints.MaxLoanPeriod {
		return ErrInvalidLoanPeriod
	}
	maxAge, ok := e.ageLimits[strings.ToLower(req.Country)]
	if !ok {
		return ErrUnsupportedCountry
	}
	if req.Age < e.constraints.MinAge {
		return ErrAgeTooLow
	}
	if req.Age > maxAge {
		return ErrAgeTooHigh
	}
	return nil
}

// creditModifier buckets the applicant by the last four digits of the
// personal code: [0,2500) is debt, then segments 1..3 in 2500-wide
// bands.
func (e *Engine) creditModifier(personalCode string) (int, error) {
	if len(personalCode) < 4 {
		return 0, ErrInvalidPersonalCode
	}
	segment, err := strconv.Atoi(personalCode[len(personalCode)-4:])
	if err != nil {
		return 0, ErrInvalidPersonalCode
	}

	switch {
	case segment < 2500:
		return 0, nil
	case segment < 5000:
		return e.constraints.Segment1Modifier, nil
	case segment < 7500:
		return e.constraints.Segment2Modifier, nil
	default:
		return e.constraints.Segment3Modifier, nil
	}
}

func (e *Engine) creditScore(modifier, loanAmount, loanPeriod int) float64 {
	return (float64(modifier) / float64(loanAmount)) * float64(loanPeriod) / 10.0
}
