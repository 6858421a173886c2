package input

import (
	"errors"
	"fmt"
)

// ErrInputFormat is wrapped by every ValidationError.
var ErrInputFormat = errors.New("input: invalid format")

// ValidationError describes why a field of user input was rejected.
// It never reaches the solver: the prompt loop prints Reason and asks again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("input: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInputFormat) match.
func (e *ValidationError) Unwrap() error { return ErrInputFormat }

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
