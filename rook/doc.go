// Package rook defines the dense vector form of 0-rook monoid elements
// and the right action of the generators π(0), …, π(n-1) on them.
//
// A rank-n rook places pairwise-distinct values from 1..n on some of the
// positions 1..n; unused positions hold 0. The generator π(0) clears
// position 1, and π(t) for t ≥ 1 sorts the adjacent pair of positions
// (t, t+1) into weakly decreasing order, swapping exactly when
// r[t-1] < r[t].
//
// Complexity: every operation is a single pass, O(n) time, O(n) memory
// for the returned copy. Inputs are never mutated.
//
// Errors:
//
//   - ErrValueRange      if an entry falls outside [0, n].
//   - ErrDuplicateValue  if a nonzero value occurs twice.
//   - ErrGeneratorRange  if the generator index is outside [0, n-1].
package rook
