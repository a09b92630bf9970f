// Package aoc is a harness for Advent of Code solutions plus the grid and
// search utilities the solutions share.
//
// Layout:
//
//	puzzle/       — Selector (year, day) and day-number parsing
//	grid/         — generic 2-D Grid, Point, Direction, side iterators, rotation
//	dijkstra/     — least-cost path under straight-run constraints (crucible search)
//	bfs/          — breadth-first search over implicit state spaces
//	dfs/          — longest simple path by backtracking depth-first search
//	input/        — cached, lock-protected puzzle input provider and HTTP fetcher
//	solver/       — Solver contract, report rendering, Registry dispatcher
//	registrygen/  — build-time scan of day<N>.go files into a registry table
//	y2023/        — 2023 solutions and their generated registry
//	cmd/aoc2023   — command-line entry point: aoc2023 <day>
//	cmd/genregistry — go:generate tool writing registry_gen.go
//
// A typical run:
//
//	provider := input.NewProvider(input.NewHTTPFetcher(session))
//	reg := solver.NewRegistry(y2023.Year, y2023.Factories, provider)
//	report, err := reg.Run(ctx, puzzle.Selector{Day: 17})
//
// Adding a day means writing y2023/day<N>.go with a NewDay<N> factory and
// running go generate ./y2023.
package aoc
