package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNoStart is returned when Walk receives no start states.
	ErrNoStart = errors.New("bfs: no start states")

	// ErrNilSuccessor is returned when the successor function is nil.
	ErrNilSuccessor = errors.New("bfs: successor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by PathTo for a state the walk never reached.
	ErrUnreached = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// OnVisit, if set, is called as each state is dequeued; a non-nil
	// error aborts the walk.
	OnVisit func(s any, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background() and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
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

// WithOnVisit registers a hook called for every visited state in visit
// order. The state is passed as any; callers assert it back to S.
func WithOnVisit(fn func(s any, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a walk:
//   - Order: states visited, in visit sequence.
//   - Depth: distance (in steps) of each reached state from the start set.
//   - Parent: predecessor of each non-start state in the BFS tree.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// Reached reports whether s was visited.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// PathTo reconstructs the path from its start state to dest.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, dest)
	}
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
