package ledger

import (
	"errors"
	"fmt"
)

// ErrNoGroup is returned when an expense is submitted before any group has
// been created. Settlement on a missing group is not an error: it just
// yields empty balances and an empty plan.
var ErrNoGroup = errors.New("no group has been created")

// ValidationError reports rejected expense input. When one is returned, no
// balance was mutated: the expense was rejected whole.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid expense: %v", e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Errorf(format, args...)}
}
