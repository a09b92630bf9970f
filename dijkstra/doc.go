// Package dijkstra implements the constrained-run ("crucible") variant of
// Dijkstra's shortest-path algorithm over a grid of non-negative entry costs.
//
// Overview:
//
//   - A move goes k cells in one cardinal direction, minStep ≤ k ≤ maxStep.
//   - Every move after the first must turn 90°: it may neither continue in the
//     direction of the previous move nor reverse it.
//   - Entering a cell pays its value; the start cell is never paid.
//   - The search state is (row, col, last direction). Keying on the direction
//     lets the same cell be settled once per arrival heading, which is what
//     makes the run-length constraint exact.
//
// Algorithm:
//
//  1. best[(r,c,d)] holds the cheapest known cost; the heap holds (cost, state).
//  2. Seed the heap with (0, (source, Idle)).
//  3. Pop the minimum. A state on the target coordinates ends the search.
//     Entries whose cost exceeds best[state] are stale and skipped.
//  4. For each cardinal d other than the current direction and its reverse,
//     walk k = 1..maxStep accumulating entered-cell costs; for k ≥ minStep
//     relax (r', c', d) and push on improvement.
//  5. An empty heap means ErrNoPath.
//
// Complexity:
//
//   - Time:  O(S·maxStep·log S) where S = 4·W·H states.
//   - Space: O(S) for best costs, predecessor links and heap entries.
//
// Options:
//
//   - WithReturnPath(): reconstruct the sequence of runs in Result.Moves.
//   - WithSource(p), WithTarget(p): override the top-left / bottom-right corners.
//
// Errors (sentinel):
//
//   - ErrNilGrid:          the grid pointer is nil.
//   - ErrBadRunLength:     minStep < 1 or maxStep < minStep.
//   - ErrNegativeWeight:   a cell holds a negative cost.
//   - ErrPointOutOfBounds: source or target lies off the grid.
//   - ErrNoPath:           the target is unreachable under the run rules.
//
// Example usage:
//
//	heat, _ := grid.Parse(input, grid.Digit[uint8])
//	res, err := dijkstra.Crucible(heat, 4, 10)
//	if err != nil {
//	    return nil, err
//	}
//	fmt.Println(res.Cost)
package dijkstra
