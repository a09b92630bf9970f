package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/aoc/grid"
)

// headings is the number of distinct last-move labels per cell: Idle plus
// the four cardinal directions (grid.Idle..grid.West).
const headings = int(grid.West) + 1

// Crucible returns the minimum total entry cost of travelling from the
// source cell (default top-left) to the target cell (default bottom-right)
// when every straight run covers between minStep and maxStep cells and each
// run must turn 90° from the previous one.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. 1 ≤ minStep ≤ maxStep (ErrBadRunLength).
//  3. Source and target must lie on the grid (ErrPointOutOfBounds).
//  4. No cell may hold a negative cost (ErrNegativeWeight).
//
// The search stops as soon as a state on the target coordinates is popped,
// whatever its heading, and returns that cost. ErrNoPath is returned when
// the heap drains first.
//
// Complexity:
//
//   - Time:  O(S·maxStep·log S), S = 4·W·H
//   - Space: O(S)
func Crucible[T constraints.Integer](g *grid.Grid[T], minStep, maxStep int, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGrid
	}
	if minStep < 1 || maxStep < minStep {
		return nil, fmt.Errorf("%w: min=%d max=%d", ErrBadRunLength, minStep, maxStep)
	}
	source, target := grid.Point{}, g.BottomRight()
	if cfg.Source != nil {
		source = *cfg.Source
	}
	if cfg.Target != nil {
		target = *cfg.Target
	}
	if !g.InBounds(source) {
		return nil, fmt.Errorf("%w: source %v", ErrPointOutOfBounds, source)
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v", ErrPointOutOfBounds, target)
	}

	// 3) Pre-scan for negative costs and fail fast.
	for p, v := range g.All() {
		if *v < 0 {
			return nil, fmt.Errorf("%w: cell %v holds %d", ErrNegativeWeight, p, *v)
		}
	}

	// 4) Prepare state tables.
	n := g.Height() * g.Width() * headings
	r := &runner[T]{
		g:       g,
		minStep: minStep,
		maxStep: maxStep,
		target:  target,
		best:    make([]uint64, n),
		pq:      make(nodePQ, 0, g.Height()*g.Width()),
	}
	for i := range r.best {
		r.best[i] = math.MaxUint64
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}

	// 5) Seed and run.
	r.init(source)
	goal, err := r.process()
	if err != nil {
		return nil, err
	}

	res := &Result{Cost: goal.cost}
	if cfg.ReturnPath {
		res.Moves = r.path(r.index(goal.p, goal.dir))
	}
	return res, nil
}

// runner holds the mutable state for a single Crucible execution.
type runner[T constraints.Integer] struct {
	g       *grid.Grid[T] // entry costs; read-only here
	minStep int           // shortest allowed run
	maxStep int           // longest allowed run
	target  grid.Point    // goal coordinates, any heading
	best    []uint64      // state index → cheapest known cost
	prev    []int         // state index → predecessor state index, nil unless ReturnPath
	pq      nodePQ        // lazy min-heap of candidate states
}

// index flattens (p, dir) into a slot of best/prev.
func (r *runner[T]) index(p grid.Point, dir grid.Direction) int {
	return (p.Row*r.g.Width()+p.Col)*headings + int(dir)
}

// state decodes a flattened index back into (p, dir).
func (r *runner[T]) state(idx int) (grid.Point, grid.Direction) {
	cell, dir := idx/headings, grid.Direction(idx%headings)
	return grid.Point{Row: cell / r.g.Width(), Col: cell % r.g.Width()}, dir
}

// init records the source state at cost 0 and pushes it.
func (r *runner[T]) init(source grid.Point) {
	heap.Init(&r.pq)
	r.best[r.index(source, grid.Idle)] = 0
	heap.Push(&r.pq, &nodeItem{p: source, dir: grid.Idle, cost: 0})
}

// process pops states in cost order until the target is reached.
func (r *runner[T]) process() (*nodeItem, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.p == r.target {
			return item, nil
		}
		// stale entry: a cheaper cost was recorded after this push
		if item.cost > r.best[r.index(item.p, item.dir)] {
			continue
		}
		r.relax(item)
	}
	return nil, ErrNoPath
}

// relax expands every legal run out of item: each cardinal direction other
// than item.dir and its reverse, for run lengths minStep..maxStep.
func (r *runner[T]) relax(item *nodeItem) {
	from := r.index(item.p, item.dir)
	for _, d := range grid.Cardinals() {
		if d == item.dir || d == item.dir.Reverse() {
			continue
		}
		cost := item.cost
		for k := 1; k <= r.maxStep; k++ {
			q, ok := r.g.Step(item.p, k, d)
			if !ok {
				break
			}
			v, _ := r.g.At(q)
			cost += uint64(v)
			if k < r.minStep {
				continue
			}
			to := r.index(q, d)
			// strict improvement only, so equal-cost duplicates are never pushed
			if cost >= r.best[to] {
				continue
			}
			r.best[to] = cost
			if r.prev != nil {
				r.prev[to] = from
			}
			heap.Push(&r.pq, &nodeItem{p: q, dir: d, cost: cost})
		}
	}
}

// path walks predecessor links back from goal and returns the runs in
// travel order.
func (r *runner[T]) path(goal int) []Move {
	var moves []Move
	for at := goal; r.prev[at] >= 0; at = r.prev[at] {
		from := r.prev[at]
		fp, _ := r.state(from)
		tp, dir := r.state(at)
		run := abs(tp.Row-fp.Row) + abs(tp.Col-fp.Col)
		moves = append(moves, Move{
			From: fp,
			To:   tp,
			Dir:  dir,
			Run:  run,
			Cost: r.best[at] - r.best[from],
		})
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// nodeItem is a state and the cost at which it was pushed.
type nodeItem struct {
	p    grid.Point
	dir  grid.Direction
	cost uint64
}

// nodePQ is a min-heap of *nodeItem ordered by cost ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller cost first.
func (pq nodePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
