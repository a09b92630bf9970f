// Package bfs provides breadth-first search over an implicit state space.
//
// States are any comparable type; the caller supplies the successor function,
// so the same walker serves grid flood fills, beam tracing over
// (point, heading) pairs, or any other unweighted reachability question.
//
// Walk explores states in increasing distance from the start set, records
// visit order, depth and parent links, and supports cancellation through a
// context, a depth limit and an OnVisit hook that may abort the walk.
package bfs
