package grid

import "iter"

// TopSide yields the points of row 0 from left to right.
func (g *Grid[T]) TopSide() iter.Seq[Point] {
	return g.line(Point{Row: 0, Col: 0}, East, g.width)
}

// BottomSide yields the points of the last row from left to right.
func (g *Grid[T]) BottomSide() iter.Seq[Point] {
	return g.line(Point{Row: g.height - 1, Col: 0}, East, g.width)
}

// LeftSide yields the points of column 0 from top to bottom.
func (g *Grid[T]) LeftSide() iter.Seq[Point] {
	return g.line(Point{Row: 0, Col: 0}, South, g.height)
}

// RightSide yields the points of the last column from top to bottom.
func (g *Grid[T]) RightSide() iter.Seq[Point] {
	return g.line(Point{Row: 0, Col: g.width - 1}, South, g.height)
}

// line yields n points starting at from and advancing along d.
func (g *Grid[T]) line(from Point, d Direction, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := 0; i < n; i++ {
			if !yield(from.Move(d, i)) {
				return
			}
		}
	}
}

// All yields every point with a pointer to its cell, in row-major order.
// Writes through the pointer update the grid.
func (g *Grid[T]) All() iter.Seq2[Point, *T] {
	return func(yield func(Point, *T) bool) {
		for r := range g.cells {
			for c := range g.cells[r] {
				if !yield(Point{Row: r, Col: c}, &g.cells[r][c]) {
					return
				}
			}
		}
	}
}

// Neighbors yields the in-bounds orthogonal neighbors of p with the
// direction that reaches each, clockwise from North.
func (g *Grid[T]) Neighbors(p Point) iter.Seq2[Point, Direction] {
	return func(yield func(Point, Direction) bool) {
		for _, d := range Cardinals() {
			q, ok := g.Step(p, 1, d)
			if !ok {
				continue
			}
			if !yield(q, d) {
				return
			}
		}
	}
}
