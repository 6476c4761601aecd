package models

// AdviceCode identifies an advisory outcome independently of its rendered message.
// A0xxx = match, A1xxx = selected too small, A2xxx = selected too large.
type AdviceCode string

const (
	AdviceMatch         AdviceCode = "A0000"
	AdviceSlightlySmall AdviceCode = "A1001" // one size below the estimate
	AdviceTooSmall      AdviceCode = "A1002" // two or more sizes below
	AdviceSlightlyLarge AdviceCode = "A2001" // one size above the estimate
	AdviceTooLarge      AdviceCode = "A2002" // two or more sizes above
)

// Severity returns the severity tier that goes with the code.
func (c AdviceCode) Severity() Severity {
	switch c {
	case AdviceMatch:
		return SeverityOk
	case AdviceSlightlySmall, AdviceSlightlyLarge:
		return SeverityWarning
	default:
		return SeverityError
	}
}
