package dijkstra

import (
	"errors"

	"github.com/katalvlaran/aoc/grid"
)

// Sentinel errors returned by Crucible.
var (
	// ErrNilGrid indicates that a nil grid was passed to Crucible.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadRunLength indicates minStep < 1 or maxStep < minStep.
	ErrBadRunLength = errors.New("dijkstra: run length bounds must satisfy 1 <= min <= max")

	// ErrNegativeWeight indicates that a cell holds a negative entry cost.
	ErrNegativeWeight = errors.New("dijkstra: negative cell cost encountered")

	// ErrPointOutOfBounds indicates a source or target outside the grid.
	ErrPointOutOfBounds = errors.New("dijkstra: point out of bounds")

	// ErrNoPath indicates the target cannot be reached under the run rules.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Options configures Crucible.
//
// Source     – starting cell; defaults to (0,0).
// Target     – goal cell; defaults to the grid's bottom-right corner.
// ReturnPath – if true, Result.Moves holds the runs of one cheapest path.
type Options struct {
	Source     *grid.Point
	Target     *grid.Point
	ReturnPath bool
}

// Option represents a functional option for configuring Crucible.
type Option func(*Options)

// WithReturnPath enables reconstruction of the cheapest path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithSource starts the search at p instead of the top-left corner.
func WithSource(p grid.Point) Option {
	return func(o *Options) {
		o.Source = &p
	}
}

// WithTarget ends the search at p instead of the bottom-right corner.
func WithTarget(p grid.Point) Option {
	return func(o *Options) {
		o.Target = &p
	}
}

// DefaultOptions returns Options with corner-to-corner search and no path.
func DefaultOptions() Options {
	return Options{}
}

// Move is one straight run of a reconstructed path.
type Move struct {
	From grid.Point
	To   grid.Point
	Dir  grid.Direction
	Run  int    // number of cells entered
	Cost uint64 // sum of the entered cells
}

// Result holds the outcome of a Crucible search.
type Result struct {
	Cost  uint64 // minimum total entry cost from source to target
	Moves []Move // nil unless WithReturnPath was given
}
