package fixed

import (
	"errors"
	"fmt"
)

// ErrPrecondition is wrapped by every PreconditionError.
var ErrPrecondition = errors.New("fixed: precondition violated")

// PreconditionError reports caller misuse: an unsupported width, a zero or
// oversized divisor, or malformed input text. Arithmetic functions panic with
// it, parsing functions return it.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("fixed: precondition violated: %s", e.Reason)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

func newPrecondition(format string, args ...interface{}) *PreconditionError {
	return &PreconditionError{Reason: fmt.Sprintf(format, args...)}
}
