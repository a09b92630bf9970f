package solver

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoc/puzzle"
)

// InputSource resolves a selector to its puzzle input text.
type InputSource interface {
	Input(ctx context.Context, sel puzzle.Selector) (string, error)
}

// Registry dispatches selectors of one year to their solver factories.
// It is immutable after construction.
type Registry struct {
	year      int
	factories map[int]Factory
	inputs    InputSource
	logger    *zerolog.Logger
}

// Option customizes a Registry.
type Option func(*Registry)

// WithLogger sets the logger for dispatch events.
func WithLogger(l *zerolog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns a Registry for year over a copy of factories.
func NewRegistry(year int, factories map[int]Factory, inputs InputSource, opts ...Option) *Registry {
	nop := zerolog.Nop()
	r := &Registry{
		year:      year,
		factories: maps.Clone(factories),
		inputs:    inputs,
		logger:    &nop,
	}
	if r.factories == nil {
		r.factories = map[int]Factory{}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Year returns the puzzle year this registry serves.
func (r *Registry) Year() int { return r.year }

// Days lists the registered days in ascending order.
func (r *Registry) Days() []int {
	return slices.Sorted(maps.Keys(r.factories))
}

// Lookup returns the factory registered for day.
func (r *Registry) Lookup(day int) (Factory, bool) {
	f, ok := r.factories[day]
	return f, ok
}

// Run selects the solver for sel, loads its input, constructs it and returns
// its report. A zero sel.Year means the registry's year.
//
// Errors (in order): puzzle.ErrInvalidDay, ErrUnknownDay (unregistered day or
// another year), the input source's error, the factory's error. Part failures
// are rendered into the report and never returned.
func (r *Registry) Run(ctx context.Context, sel puzzle.Selector) (string, error) {
	if sel.Year == 0 {
		sel.Year = r.year
	}
	if err := sel.Validate(); err != nil {
		return "", err
	}
	if sel.Year != r.year {
		return "", fmt.Errorf("%w: year %d (this binary solves %d)", ErrUnknownDay, sel.Year, r.year)
	}
	factory, ok := r.factories[sel.Day]
	if !ok {
		return "", fmt.Errorf("%w: day %d of %d", ErrUnknownDay, sel.Day, sel.Year)
	}
	log := r.logger.With().Int("year", sel.Year).Int("day", sel.Day).Logger()

	text, err := r.inputs.Input(ctx, sel)
	if err != nil {
		return "", fmt.Errorf("loading input for day %d: %w", sel.Day, err)
	}

	start := time.Now()
	s, err := factory(text)
	if err != nil {
		return "", fmt.Errorf("constructing day %d: %w", sel.Day, err)
	}
	log.Debug().Dur("parse", time.Since(start)).Msg("solver constructed")

	part1, part2 := Solve(s)
	for i, p := range []PartResult{part1, part2} {
		if p.Err != nil {
			log.Warn().Err(p.Err).Int("part", i+1).Msg("part failed")
		}
	}
	log.Debug().Dur("total", time.Since(start)).Msg("solver finished")
	return FormatReport(part1, part2), nil
}
