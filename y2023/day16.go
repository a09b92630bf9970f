package y2023

import (
	"github.com/katalvlaran/aoc/bfs"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/solver"
)

// beam is a light beam entering a tile while travelling in a direction.
type beam struct {
	At  grid.Point
	Dir grid.Direction
}

// Day16 traces light through a contraption of mirrors and splitters.
type Day16 struct {
	tiles *grid.Grid[rune]
}

func contraptionCell(r rune) (rune, error) {
	switch r {
	case '.', '/', '\\', '|', '-':
		return r, nil
	}
	return 0, grid.ErrBadCell
}

// NewDay16 parses the contraption layout.
func NewDay16(input string) (solver.Solver, error) {
	g, err := grid.Parse(input, contraptionCell)
	if err != nil {
		return nil, solver.ParseErrorf("day 16: %w", err)
	}
	return &Day16{tiles: g}, nil
}

// outgoing lists the directions light leaves tile in when it arrives
// travelling in d.
func outgoing(tile rune, d grid.Direction) []grid.Direction {
	switch tile {
	case '/':
		if d.IsHorizontal() {
			return []grid.Direction{d.TurnLeft()}
		}
		return []grid.Direction{d.TurnRight()}
	case '\\':
		if d.IsHorizontal() {
			return []grid.Direction{d.TurnRight()}
		}
		return []grid.Direction{d.TurnLeft()}
	case '|':
		if d.IsHorizontal() {
			return []grid.Direction{grid.North, grid.South}
		}
	case '-':
		if d.IsVertical() {
			return []grid.Direction{grid.East, grid.West}
		}
	}
	return []grid.Direction{d}
}

func (d *Day16) next(b beam) []beam {
	tile, _ := d.tiles.At(b.At)
	var out []beam
	for _, dir := range outgoing(tile, b.Dir) {
		if q, ok := d.tiles.Step(b.At, 1, dir); ok {
			out = append(out, beam{At: q, Dir: dir})
		}
	}
	return out
}

// energized counts the tiles crossed by a beam entering at start.
func (d *Day16) energized(start beam) (int, error) {
	res, err := bfs.Walk([]beam{start}, d.next)
	if err != nil {
		return 0, err
	}
	lit := make(map[grid.Point]struct{}, len(res.Order))
	for _, b := range res.Order {
		lit[b.At] = struct{}{}
	}
	return len(lit), nil
}

// Part1 sends the beam into the top-left tile heading east.
func (d *Day16) Part1() (any, error) {
	return d.energized(beam{At: grid.Point{}, Dir: grid.East})
}

// Part2 tries every edge tile, heading into the grid, and keeps the best.
func (d *Day16) Part2() (any, error) {
	var starts []beam
	for p := range d.tiles.TopSide() {
		starts = append(starts, beam{At: p, Dir: grid.South})
	}
	for p := range d.tiles.BottomSide() {
		starts = append(starts, beam{At: p, Dir: grid.North})
	}
	for p := range d.tiles.LeftSide() {
		starts = append(starts, beam{At: p, Dir: grid.East})
	}
	for p := range d.tiles.RightSide() {
		starts = append(starts, beam{At: p, Dir: grid.West})
	}

	best := 0
	for _, s := range starts {
		n, err := d.energized(s)
		if err != nil {
			return nil, err
		}
		best = max(best, n)
	}
	return best, nil
}
