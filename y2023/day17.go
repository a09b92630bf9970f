package y2023

import (
	"github.com/katalvlaran/aoc/dijkstra"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/solver"
)

// Day17 routes a crucible across a city of heat-loss blocks.
type Day17 struct {
	city *grid.Grid[uint8]
}

// NewDay17 parses the heat-loss map.
func NewDay17(input string) (solver.Solver, error) {
	g, err := grid.Parse(input, grid.Digit[uint8])
	if err != nil {
		return nil, solver.ParseErrorf("day 17: %w", err)
	}
	return &Day17{city: g}, nil
}

func (d *Day17) leastHeatLoss(minStep, maxStep int) (any, error) {
	res, err := dijkstra.Crucible(d.city, minStep, maxStep)
	if err != nil {
		return nil, err
	}
	return res.Cost, nil
}

// Part1 moves at most three blocks before turning.
func (d *Day17) Part1() (any, error) { return d.leastHeatLoss(1, 3) }

// Part2 is the ultra crucible: four to ten blocks per straight run.
func (d *Day17) Part2() (any, error) { return d.leastHeatLoss(4, 10) }
