package jot

import (
	"errors"
	"fmt"

	"github.com/jot-format/jot/ir"
)

var (
	// ErrParse reports malformed input text.
	ErrParse = ir.ErrParse
	// ErrType reports an operation invoked on an object whose type
	// disqualifies it.
	ErrType = errors.New("type mismatch")
	// ErrMissing reports a key or index that is not present.
	ErrMissing = errors.New("missing element")
)

// Error carries the failing operation along with one of the sentinel
// errors above; match with errors.Is.
type Error struct {
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("jot %s: %s: %s", e.Op, e.Err, e.Message)
	}
	return fmt.Sprintf("jot %s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func typeErr(op string, want, got ir.Type) error {
	return &Error{
		Op:      op,
		Message: fmt.Sprintf("want %s, have %s", want, got),
		Err:     ErrType,
	}
}

func missingErr(op, what string) error {
	return &Error{
		Op:      op,
		Message: what,
		Err:     ErrMissing,
	}
}
