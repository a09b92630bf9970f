package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrMalformedGrid is matched by every construction failure.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrBadCell indicates a cell parser could not interpret a rune.
	ErrBadCell = errors.New("grid: unparsable cell")
)

// Point is a (Row, Col) coordinate. Row 0 is the top row.
type Point struct {
	Row, Col int
}

// Move returns p displaced n cells along d. The result may lie off the board.
func (p Point) Move(d Direction, n int) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a rectangular board of cells. It exclusively owns its cells;
// iterators borrow them without copying.
type Grid[T any] struct {
	cells  [][]T
	height int
	width  int
}
