package decision

// Request carries one loan application. It is constructed per call and
// discarded after Evaluate returns.
type Request struct {
	PersonalCode string
	LoanAmount   int
	LoanPeriod   int
	Country      string
	Age          int
}

// Decision is the approved (amount, period) pair. It is only returned
// alongside a nil error; every rejection is reported as an error value.
type Decision struct {
	LoanAmount int `json:"loanAmount"`
	LoanPeriod int `json:"loanPeriod"`
}

// CodeValidator reports whether a personal identity code is
// syntactically valid and passes its national checksum.
type CodeValidator interface {
	IsValid(code string) bool
}
