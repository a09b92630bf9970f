package solver

import (
	"errors"
	"fmt"
)

// PartResult is the rendered outcome of one part.
type PartResult struct {
	Answer string // rendered answer; empty when Err is set
	Err    error
}

// String returns the answer, or the debug rendering of the error.
func (p PartResult) String() string {
	if p.Err != nil {
		return DebugError(p.Err)
	}
	return p.Answer
}

// Solve runs both parts of s. A part that fails or panics does not stop
// the other.
func Solve(s Solver) (part1, part2 PartResult) {
	return run(s.Part1), run(s.Part2)
}

// Report runs both parts of s and renders the two-line report.
func Report(s Solver) string {
	return FormatReport(Solve(s))
}

// FormatReport renders two part results as
//
//	Part 1: <text>
//	Part 2: <text>
func FormatReport(part1, part2 PartResult) string {
	return fmt.Sprintf("Part 1: %s\nPart 2: %s", part1, part2)
}

// DebugError renders err for a report: errors implementing fmt.GoStringer
// anywhere in their chain use that form, others use Error().
func DebugError(err error) string {
	var gs fmt.GoStringer
	if errors.As(err, &gs) {
		return gs.GoString()
	}
	return err.Error()
}

// run calls part, turning a panic into an ErrPanic error.
func run(part func() (any, error)) (res PartResult) {
	defer func() {
		if r := recover(); r != nil {
			res = PartResult{Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()
	v, err := part()
	if err != nil {
		return PartResult{Err: err}
	}
	return PartResult{Answer: fmt.Sprint(v)}
}
