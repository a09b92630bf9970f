package dfs

import (
	"context"
	"errors"
	"fmt"
)

const (
	White = iota // White: the state is not on the current path.
	Gray         // Gray: the state is on the current path.
)

var (
	// ErrNilSuccessor is returned when the successor function is nil.
	ErrNilSuccessor = errors.New("dfs: successor function is nil")

	// ErrNoPath is returned when no path joins start and goal.
	ErrNoPath = errors.New("dfs: goal not reachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Edge is a weighted transition to another state.
type Edge[S comparable] struct {
	To     S
	Weight int
}

// Option configures the search.
type Option func(*Options)

// Options holds parameters to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if >= 0, limits paths to this many edges.
	// A negative value (default) disables the limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with context.Background() and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits paths to limit edges.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}
