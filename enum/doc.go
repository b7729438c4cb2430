// Package enum enumerates and counts 0-rook monoid elements in both
// of their guises: R-codes and rook vectors.
//
// ⚙️ What the package offers:
//
//   - EachCode / EachRook : streaming visitors over every element of a
//     rank, in a deterministic order, with early stop
//   - Codes / Rooks       : materializing wrappers for small ranks
//   - Counter             : memoized closed forms, r(n) for whole ranks
//     and t(n,k) = C(n,k)²·k! by number of placed values
//
// The two enumerations are deliberately independent: codes grow by
// prefix extension under the insertion bound, rook vectors by choosing
// an unused value per position. Agreement of the two counts with the
// closed form, and the bijection between the two sets, is exactly what
// the verify package checks.
//
// The whole-rank sequence r(n) is OEIS A002720: 1, 2, 7, 34, 209,
// 1546, 13327, … with r(n) = 2n·r(n-1) - (n-1)²·r(n-2). Counting is
// served in int64 and therefore stops at MaxCountSize = 18, the last
// rank below overflow; materialization and visiting stop at
// MaxEnumSize = 9 (17.5 million elements) to keep exhaustive walks
// tractable.
//
// Visitors hand their callback a shared buffer that the walk keeps
// reusing; Clone the value to retain it beyond the call.
package enum
