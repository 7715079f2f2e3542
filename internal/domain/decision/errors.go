package decision

import "errors"

var (
	ErrInvalidPersonalCode = errors.New("invalid personal ID code")
	ErrInvalidLoanAmount   = errors.New("invalid loan amount")
	ErrInvalidLoanPeriod   = errors.New("invalid loan period")
	ErrUnsupportedCountry  = errors.New("loans are not available for your country")
	ErrAgeTooLow           = errors.New("age does not meet minimum age requirements")
	ErrAgeTooHigh          = errors.New("age exceeds maximum age requirements")
)

const (
	ReasonDebt          = "loans are not available with debt"
	ReasonNoValidPeriod = "no valid loan period found"
	ReasonScoreTooLow   = "credit score too low"
)

// NoValidLoanError means the inputs were well formed but no qualifying
// (amount, period) combination exists for the applicant.
type NoValidLoanError struct {
	Reason string
}

func (e *NoValidLoanError) Error() string {
	return e.Reason
}

// IsValidationError reports whether err is one of the input-validation
// rejections, as opposed to a no-valid-loan outcome.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPersonalCode) ||
		errors.Is(err, ErrInvalidLoanAmount) ||
		errors.Is(err, ErrInvalidLoanPeriod) ||
		errors.Is(err, ErrUnsupportedCountry) ||
		errors.Is(err, ErrAgeTooLow) ||
		errors.Is(err, ErrAgeTooHigh)
}
