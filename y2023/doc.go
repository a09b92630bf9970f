// Package y2023 holds the Advent of Code 2023 solutions.
//
// Each day lives in day<N>.go and exports NewDay<N>, a solver.Factory.
// The registry in registry_gen.go is regenerated from those files.
package y2023

//go:generate go run ../cmd/genregistry --year 2023
