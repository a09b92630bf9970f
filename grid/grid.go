package grid

import (
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T any](rows [][]T) (*Grid[T], error) {
	if err := validate(rows); err != nil {
		return nil, err
	}
	cells := make([][]T, len(rows))
	for r := range rows {
		cells[r] = make([]T, len(rows[r]))
		copy(cells[r], rows[r])
	}
	return adopt(cells), nil
}

// Filled constructs a height×width Grid with every cell set to v.
func Filled[T any](height, width int, v T) (*Grid[T], error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]T, height)
	for r := range cells {
		row := make([]T, width)
		for c := range row {
			row[c] = v
		}
		cells[r] = row
	}
	return adopt(cells), nil
}

// validate checks emptiness and rectangularity of rows.
func validate[T any](rows [][]T) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return ErrNonRectangular
		}
	}
	return nil
}

// adopt wraps already-validated cells without copying.
func adopt[T any](cells [][]T) *Grid[T] {
	return &Grid[T]{cells: cells, height: len(cells), width: len(cells[0])}
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// BottomRight returns (Height-1, Width-1).
func (g *Grid[T]) BottomRight() Point {
	return Point{Row: g.height - 1, Col: g.width - 1}
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell at p, or ok=false if p is out of bounds.
func (g *Grid[T]) At(p Point) (v T, ok bool) {
	if !g.InBounds(p) {
		return v, false
	}
	return g.cells[p.Row][p.Col], true
}

// Put overwrites the cell at p. p must be in bounds.
func (g *Grid[T]) Put(p Point, v T) {
	g.cells[p.Row][p.Col] = v
}

// Step returns the point reached by moving n cells from p in direction d,
// or ok=false when that point lies off the grid. Idle returns p itself.
func (g *Grid[T]) Step(p Point, n int, d Direction) (Point, bool) {
	q := p.Move(d, n)
	if !g.InBounds(q) {
		return Point{}, false
	}
	return q, true
}

// AtStep combines Step and At.
func (g *Grid[T]) AtStep(p Point, n int, d Direction) (v T, ok bool) {
	q, ok := g.Step(p, n, d)
	if !ok {
		return v, false
	}
	return g.cells[q.Row][q.Col], true
}

// Row returns a copy of row r, or nil if r is out of range.
func (g *Grid[T]) Row(r int) []T {
	if r < 0 || r >= g.height {
		return nil
	}
	out := make([]T, g.width)
	copy(out, g.cells[r])
	return out
}

// Col returns a copy of column c, or nil if c is out of range.
func (g *Grid[T]) Col(c int) []T {
	if c < 0 || c >= g.width {
		return nil
	}
	out := make([]T, g.height)
	for r := range out {
		out[r] = g.cells[r][c]
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	c, _ := New(g.cells)
	return c
}

// Rot90 rotates the grid 90° clockwise in place: the cell at (r, c) moves to
// (c, Height-1-r) and Width and Height swap. Square grids rotate without
// allocating a new row array.
// Complexity: O(W×H).
func (g *Grid[T]) Rot90() {
	h, w := g.height, g.width
	if h == w {
		// transpose, then mirror each row
		for r := 0; r < h; r++ {
			for c := r + 1; c < w; c++ {
				g.cells[r][c], g.cells[c][r] = g.cells[c][r], g.cells[r][c]
			}
		}
		for _, row := range g.cells {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		return
	}
	rotated := make([][]T, w)
	for nr := range rotated {
		rotated[nr] = make([]T, h)
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			rotated[c][h-1-r] = g.cells[r][c]
		}
	}
	g.cells, g.height, g.width = rotated, w, h
}

// Format renders the grid one row per line using cell to render each value.
// No trailing newline is emitted.
func (g *Grid[T]) Format(cell func(T) string) string {
	var sb strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			sb.WriteString(cell(v))
		}
	}
	return sb.String()
}
