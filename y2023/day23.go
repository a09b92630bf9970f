package y2023

import (
	"iter"

	"github.com/katalvlaran/aoc/dfs"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/solver"
)

var slopes = map[rune]grid.Direction{
	'^': grid.North,
	'>': grid.East,
	'v': grid.South,
	'<': grid.West,
}

// Day23 finds the longest hike through a forest of trails and icy slopes.
type Day23 struct {
	trails      *grid.Grid[rune]
	start, goal grid.Point
}

func trailCell(r rune) (rune, error) {
	if _, ok := slopes[r]; ok || r == '.' || r == '#' {
		return r, nil
	}
	return 0, grid.ErrBadCell
}

// NewDay23 parses the map and locates the gaps in its top and bottom rows.
func NewDay23(input string) (solver.Solver, error) {
	g, err := grid.Parse(input, trailCell)
	if err != nil {
		return nil, solver.ParseErrorf("day 23: %w", err)
	}
	d := &Day23{trails: g}
	var okStart, okGoal bool
	if d.start, okStart = gap(g, g.TopSide()); !okStart {
		return nil, solver.ParseErrorf("day 23: no path in the top row")
	}
	if d.goal, okGoal = gap(g, g.BottomSide()); !okGoal {
		return nil, solver.ParseErrorf("day 23: no path in the bottom row")
	}
	return d, nil
}

func gap(g *grid.Grid[rune], side iter.Seq[grid.Point]) (grid.Point, bool) {
	for p := range side {
		if v, _ := g.At(p); v == '.' {
			return p, true
		}
	}
	return grid.Point{}, false
}

func (d *Day23) open(p grid.Point) bool {
	v, ok := d.trails.At(p)
	return ok && v != '#'
}

// canLeave reports whether a hiker on p may step in dir. On slippery
// ground a slope only lets you leave downhill.
func (d *Day23) canLeave(p grid.Point, dir grid.Direction, slippery bool) bool {
	if !slippery {
		return true
	}
	v, _ := d.trails.At(p)
	s, ok := slopes[v]
	return !ok || s == dir
}

// junctions numbers the start (0), the goal (1) and every tile where three
// or more trails meet.
func (d *Day23) junctions() map[grid.Point]int {
	ids := map[grid.Point]int{d.start: 0, d.goal: 1}
	for p, v := range d.trails.All() {
		if *v == '#' {
			continue
		}
		n := 0
		for q := range d.trails.Neighbors(p) {
			if d.open(q) {
				n++
			}
		}
		if _, seen := ids[p]; n >= 3 && !seen {
			ids[p] = len(ids)
		}
	}
	return ids
}

// corridors compresses every trail between two junctions into one weighted
// edge. Dead ends and uphill slopes drop the trail.
func (d *Day23) corridors(slippery bool) map[int][]dfs.Edge[int] {
	ids := d.junctions()
	edges := make(map[int][]dfs.Edge[int], len(ids))
	for from, id := range ids {
		for q, dir := range d.trails.Neighbors(from) {
			if !d.open(q) || !d.canLeave(from, dir, slippery) {
				continue
			}
			prev, cur, steps := from, q, 1
			for {
				if to, ok := ids[cur]; ok {
					edges[id] = append(edges[id], dfs.Edge[int]{To: to, Weight: steps})
					break
				}
				next, ok := d.follow(prev, cur, slippery)
				if !ok {
					break
				}
				prev, cur = cur, next
				steps++
			}
		}
	}
	return edges
}

// follow returns the tile after cur on a corridor entered from prev.
func (d *Day23) follow(prev, cur grid.Point, slippery bool) (grid.Point, bool) {
	for q, dir := range d.trails.Neighbors(cur) {
		if q != prev && d.open(q) && d.canLeave(cur, dir, slippery) {
			return q, true
		}
	}
	return grid.Point{}, false
}

func (d *Day23) longestHike(slippery bool) (any, error) {
	edges := d.corridors(slippery)
	return dfs.Longest(0, 1, func(id int) []dfs.Edge[int] { return edges[id] })
}

// Part1 treats slopes as one-way.
func (d *Day23) Part1() (any, error) { return d.longestHike(true) }

// Part2 walks slopes in either direction.
func (d *Day23) Part2() (any, error) { return d.longestHike(false) }
