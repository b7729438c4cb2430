// Package code implements R-codes: the recursive coding of 0-rook
// monoid elements, together with the insertion bound, validity checks,
// the bijective codec against rook vectors, and the generator action
// expressed directly on codes.
//
// 🚀 What is an R-code?
//
//	A vector c of length n whose entry c[i] obeys
//
//	    -m(c[:i]) ≤ c[i] ≤ i+1
//
//	where m(w), the insertion bound, is defined recursively on the
//	prefix before the entry. Positive entries remember where a value
//	landed; nonpositive entries remember which empty slot absorbed it.
//	Decode rebuilds the rook by inserting one position at a time, so
//	codes and rooks of the same rank correspond one to one.
//
// ⚙️ What the package offers:
//
//   - Bound / BoundFast : the insertion bound, recursive and one-pass
//   - IsCode / Validate : the per-position inequalities, forward-folded
//   - Identity          : the code (1, 2, …, n) of the unit placement
//   - Encode / Decode   : the bijection with rook.Rook, both directions
//   - Act               : the generator action π(t) on codes, with an
//     OnBranch hook exposing every dispatch decision of the recursion
//
// The action on codes mirrors rook.Act through the codec: decoding,
// acting on the vector and re-encoding always agrees with acting on the
// code directly. The verify package checks that square exhaustively.
//
// Complexity: validation, codec and bounds are O(n) (Encode O(n²) in
// the worst case from working-copy deletions); Act is O(n²) overall,
// O(n·i) extra work when a clearing sweep fires.
//
// Errors:
//
//   - ErrInvalidCode    if a sequence violates the per-position bounds.
//   - ErrEmptyCode      if Act is called on the zero-length code.
//   - ErrGeneratorRange if the generator index is outside [0, n-1].
//   - ErrNotRook        if Encode receives an invalid rook vector.
package code
