package grid

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Parse builds a Grid from text, one row per line, applying cell to every
// rune. Line terminators ("\n" or "\r\n") separate rows; trailing line
// terminators are ignored.
// Returns ErrEmptyGrid or ErrNonRectangular for bad shapes, or the cell
// parser's error wrapped with its position.
func Parse[T any](text string, cell func(rune) (T, error)) (*Grid[T], error) {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]T, len(lines))
	for r, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]T, 0, len(line))
		c := 0
		for _, ch := range line {
			v, err := cell(ch)
			if err != nil {
				return nil, fmt.Errorf("grid: cell (%d,%d) %q: %w", r, c, ch, err)
			}
			row = append(row, v)
			c++
		}
		rows[r] = row
	}
	if err := validate(rows); err != nil {
		return nil, err
	}
	return adopt(rows), nil
}

// Rune is the identity cell parser.
func Rune(r rune) (rune, error) {
	return r, nil
}

// Digit parses '0'..'9' into its numeric value.
func Digit[T constraints.Integer](r rune) (T, error) {
	if r < '0' || r > '9' {
		return 0, ErrBadCell
	}
	return T(r - '0'), nil
}
