// Package grid provides a generic rectangular 2D board of cells with
// bounds-checked access, directional stepping and boundary iterators.
//
// What:
//
//   - Grid[T] owns a non-empty, rectangular [][]T (row 0 at the top).
//   - Point addresses a cell as (Row, Col); Direction names the eight compass
//     moves plus Idle.
//   - Step/AtStep move n cells along a Direction; leaving the board yields ok=false.
//   - TopSide/BottomSide/LeftSide/RightSide/All/Neighbors are range-over-func
//     iterators (iter.Seq / iter.Seq2).
//   - Rot90 rotates the board clockwise; four rotations restore it.
//   - Parse builds a Grid from puzzle text with a per-rune cell parser
//     (Rune for characters, Digit[T] for single-digit numbers).
//
// Complexity:
//
//   - New, Parse, Clone, Rot90: O(W×H) time and memory.
//   - At, Put, Step, AtStep, InBounds: O(1).
//   - Side iterators: O(W) or O(H); All: O(W×H).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for construction failures, matched with errors.Is.
//   - ErrEmptyGrid: input has no rows or no columns (wraps ErrMalformedGrid).
//   - ErrNonRectangular: rows have differing lengths (wraps ErrMalformedGrid).
//   - ErrBadCell: a cell parser rejected a rune.
//
// Access operations never fail: out-of-range reads return ok=false.
// Put on an out-of-range Point is a programming error and panics like a slice index.
package grid
