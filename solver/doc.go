// Package solver defines the per-day solver contract and the registry that
// dispatches a puzzle selector to its solver.
//
// A day implements Solver (Part1, Part2) and exports a Factory that parses
// the puzzle input. Report runs both parts and renders
//
//	Part 1: <answer-or-error>
//	Part 2: <answer-or-error>
//
// A failing part never prevents the other from running; its error is
// rendered in debug form instead of the answer.
//
// Registry maps day numbers to factories for one year. Each year package
// builds its table at generate time from its day<N>.go files (see
// registrygen), so the mapping is fixed at runtime.
package solver
