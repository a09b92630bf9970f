package bfs

import "fmt"

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  func(S) []S
	opts  Options
	queue []queueItem[S]
	res   *Result[S]
}

// Walk runs breadth-first search from every state in starts, expanding each
// visited state with next. Duplicate start states are visited once.
// Returns ErrNoStart, ErrNilSuccessor or ErrOptionViolation for invalid
// input, or the context error if the walk is cancelled.
func Walk[S comparable](starts []S, next func(S) []S, opts ...Option) (*Result[S], error) {
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	if next == nil {
		return nil, ErrNilSuccessor
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next:  next,
		opts:  o,
		queue: make([]queueItem[S], 0, len(starts)),
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	for _, s := range starts {
		if !w.res.Reached(s) {
			w.enqueue(s, 0)
		}
	}
	return w.res, w.loop()
}

// enqueue records s at depth d and appends it to the queue.
func (w *walker[S]) enqueue(s S, d int) {
	w.res.Depth[s] = d
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty or cancelled.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.state)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(item.state, item.depth); err != nil {
				return fmt.Errorf("bfs: OnVisit hook for %v: %w", item.state, err)
			}
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.next(item.state) {
			if w.res.Reached(nbr) {
				continue
			}
			w.res.Parent[nbr] = item.state
			w.enqueue(nbr, nextDepth)
		}
	}
	return nil
}
