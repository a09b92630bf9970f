package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver construction and dispatch.
var (
	// ErrUnknownDay indicates no solver is registered for a day.
	ErrUnknownDay = errors.New("solver: no solver registered")

	// ErrNotImplemented is the placeholder answer of an unfinished part.
	ErrNotImplemented = errors.New("solver: not implemented")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("solver: parse error")

	// ErrPanic wraps a panic recovered while computing a part.
	ErrPanic = errors.New("solver: part panicked")
)

// Solver computes the two answers of one puzzle. Answers may be any value
// that renders with fmt (numbers, strings, multi-line diagrams).
// Solvers must not mutate shared global state.
type Solver interface {
	Part1() (any, error)
	Part2() (any, error)
}

// Factory constructs a Solver from the full puzzle input.
type Factory func(input string) (Solver, error)

// ParseError reports the first malformed element of a puzzle input.
type ParseError struct {
	Context string
	Err     error
}

// ParseErrorf builds a ParseError with a formatted context. A %w verb in
// format is unwrapped into Err.
func ParseErrorf(format string, args ...any) *ParseError {
	wrapped := fmt.Errorf(format, args...)
	return &ParseError{Context: wrapped.Error(), Err: errors.Unwrap(wrapped)}
}

// Error implements error.
func (e *ParseError) Error() string {
	return "parse error: " + e.Context
}

// GoString renders the error as ParseError("context"); reports use this form.
func (e *ParseError) GoString() string {
	return fmt.Sprintf("ParseError(%q)", e.Context)
}

// Is lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error { return e.Err }
