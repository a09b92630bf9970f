package y2023

import (
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/solver"
)

const (
	roundRock = 'O'
	cubeRock  = '#'
	emptyCell = '.'
)

// spinCycles is the number of spin cycles Part2 asks for.
const spinCycles = 1_000_000_000

// Day14 tilts a platform of round and cube-shaped rocks.
type Day14 struct {
	platform *grid.Grid[rune]
}

func platformCell(r rune) (rune, error) {
	switch r {
	case roundRock, cubeRock, emptyCell:
		return r, nil
	}
	return 0, grid.ErrBadCell
}

// NewDay14 parses the platform.
func NewDay14(input string) (solver.Solver, error) {
	g, err := grid.Parse(input, platformCell)
	if err != nil {
		return nil, solver.ParseErrorf("day 14: %w", err)
	}
	return &Day14{platform: g}, nil
}

// tiltNorth rolls every round rock up until it hits the edge or another rock.
func tiltNorth(g *grid.Grid[rune]) {
	for c := 0; c < g.Width(); c++ {
		stop := 0
		for r := 0; r < g.Height(); r++ {
			p := grid.Point{Row: r, Col: c}
			switch v, _ := g.At(p); v {
			case cubeRock:
				stop = r + 1
			case roundRock:
				if stop != r {
					g.Put(grid.Point{Row: stop, Col: c}, roundRock)
					g.Put(p, emptyCell)
				}
				stop++
			}
		}
	}
}

// spin tilts north, west, south and east in turn. Rotating clockwise after
// each tilt brings the next edge to the top; four rotations restore the
// original orientation.
func spin(g *grid.Grid[rune]) {
	for range 4 {
		tiltNorth(g)
		g.Rot90()
	}
}

// northLoad sums, over all round rocks, their distance from the south edge
// counted in rows (bottom row is 1).
func northLoad(g *grid.Grid[rune]) int {
	load := 0
	for p, v := range g.All() {
		if *v == roundRock {
			load += g.Height() - p.Row
		}
	}
	return load
}

// Part1 is the north load after a single north tilt.
func (d *Day14) Part1() (any, error) {
	g := d.platform.Clone()
	tiltNorth(g)
	return northLoad(g), nil
}

// Part2 is the north load after spinCycles spin cycles. The platform enters
// a loop quickly, so the remaining cycles are skipped once a layout repeats.
func (d *Day14) Part2() (any, error) {
	g := d.platform.Clone()
	seen := map[string]int{}
	render := func(r rune) string { return string(r) }

	for i := 0; i < spinCycles; i++ {
		key := g.Format(render)
		if first, ok := seen[key]; ok {
			period := i - first
			for range (spinCycles - i) % period {
				spin(g)
			}
			return northLoad(g), nil
		}
		seen[key] = i
		spin(g)
	}
	return northLoad(g), nil
}

