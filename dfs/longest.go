package dfs

// walker encapsulates mutable search state.
type walker[S comparable] struct {
	goal  S
	next  func(S) []Edge[S]
	opts  Options
	color map[S]int
	best  int
	found bool
}

// Longest returns the weight of the heaviest simple path from start to goal,
// where next lists the outgoing edges of a state. A path never revisits a
// state. start == goal yields 0.
func Longest[S comparable](start, goal S, next func(S) []Edge[S], opts ...Option) (int, error) {
	if next == nil {
		return 0, ErrNilSuccessor
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	w := &walker[S]{
		goal:  goal,
		next:  next,
		opts:  o,
		color: make(map[S]int),
	}
	if err := w.traverse(start, 0, 0); err != nil {
		return 0, err
	}
	if !w.found {
		return 0, ErrNoPath
	}
	return w.best, nil
}

// traverse extends the current path with s, reached after depth edges at
// total weight dist.
func (w *walker[S]) traverse(s S, depth, dist int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if s == w.goal {
		if !w.found || dist > w.best {
			w.best, w.found = dist, true
		}
		return nil
	}
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	w.color[s] = Gray
	for _, e := range w.next(s) {
		if w.color[e.To] == Gray {
			continue
		}
		if err := w.traverse(e.To, depth+1, dist+e.Weight); err != nil {
			return err
		}
	}
	w.color[s] = White

	return nil
}
