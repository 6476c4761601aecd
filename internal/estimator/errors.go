package estimator

import (
	"errors"
	"fmt"
)

// Kind classifies estimation failures.
type Kind string

const (
	KindNotFound    Kind = "not_found"
	KindCorrupt     Kind = "corrupt"
	KindRejected    Kind = "rejected"
	KindUnavailable Kind = "unavailable"
)

// Error is returned by every estimator when a prediction cannot be produced.
type Error struct {
	Op       string
	Kind     Kind
	Resource string // model name or endpoint
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Resource != "" {
		base += fmt.Sprintf(" (resource=%s)", e.Resource)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an estimator Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Kind == kind
	}
	return false
}
