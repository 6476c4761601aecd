package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHarness        = errors.New("harness size must be greater than 0 and at most 100 cm")
	ErrEmptyBootInput        = errors.New("boot size is empty")
	ErrInvalidBootFormat     = errors.New("boot size is not a number")
	ErrInvalidBoot           = errors.New("boot size must be greater than 0")
	ErrPredictionUnavailable = errors.New("prediction unavailable")
)

// ValidationError reports rejected user input. Err is one of the ErrInvalid* / ErrEmpty* sentinels.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ErrorCode maps an advisor error to a stable snake_case identifier for API clients.
// Unknown errors map to "internal_error".
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidHarness):
		return "invalid_harness"
	case errors.Is(err, ErrEmptyBootInput):
		return "empty_boot_input"
	case errors.Is(err, ErrInvalidBootFormat):
		return "invalid_boot_format"
	case errors.Is(err, ErrInvalidBoot):
		return "invalid_boot"
	case errors.Is(err, ErrPredictionUnavailable):
		return "prediction_unavailable"
	default:
		return "internal_error"
	}
}
