// Package dfs implements depth-first search over implicit graphs whose
// states are any comparable type and whose edges come from a successor
// function.
//
// Longest(start, goal, next, opts...) enumerates every simple path from
// start to goal by backtracking with three-colour marking: a state is Gray
// while it sits on the current path and White again once the search
// retreats past it. The heaviest path weight wins.
//
// Complexity:
//
//   - Time:   exponential in the worst case (every simple path is visited);
//     compress long corridors into weighted edges before searching.
//   - Memory: O(V) for the colour map and recursion stack.
//
// Options:
//
//   - WithContext(ctx)     allows cancellation via context.Context.
//   - WithMaxDepth(limit)  stops extending paths longer than limit edges.
//
// Errors:
//
//   - ErrNilSuccessor      if next is nil.
//   - ErrOptionViolation   for a negative depth limit.
//   - ErrNoPath            if goal cannot be reached.
//   - context.Canceled     if ctx is done.
package dfs
