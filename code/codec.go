package code

import (
	"fmt"
	"slices"

	"github.com/qmonoid/rookzero/rook"
)

// Encode converts a rook vector into its R-code.
//
// Algorithm: peel the values n, n-1, …, 1 off a shrinking working copy.
// A value still present records its current position (1-based); an
// absent value consumes the leftmost remaining empty slot and records
// that slot's index, negated. Entries are recorded highest value first
// and reversed into position order at the end.
//
// Contract: r is validated first and never mutated; Encode and Decode
// are mutually inverse on valid inputs.
// Complexity: O(n²) worst case from the working-copy deletions.
func Encode(r rook.Rook) (Code, error) {
	if err := rook.Validate(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotRook, err)
	}
	work := make([]int, len(r))
	copy(work, r)
	out := make(Code, 0, len(r))
	for v := len(r); v >= 1; v-- {
		if p := slices.Index(work, v); p >= 0 {
			out = append(out, p+1)
			work = slices.Delete(work, p, p+1)
			continue
		}
		// Absent values and empty slots pair off exactly, so a zero
		// always remains here.
		z := slices.Index(work, 0)
		out = append(out, -z)
		work = slices.Delete(work, z, z+1)
	}
	slices.Reverse(out)
	return out, nil
}

// Decode converts an R-code back into its rook vector, rebuilding left
// to right. Entry c[i] inserts position i+1's contribution into the
// vector built so far: a positive d places the value i+1 at index d-1,
// zero prepends an empty slot, and a negative -j inserts an empty slot
// at index j.
//
// Contract: c is validated first and never mutated; the result is
// always a valid rook vector of the same length.
// Complexity: O(n²) worst case from the insertions.
func Decode(c Code) (rook.Rook, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	out := make(rook.Rook, 0, len(c))
	for i, d := range c {
		switch {
		case d > 0:
			out = slices.Insert(out, d-1, i+1)
		case d == 0:
			out = slices.Insert(out, 0, 0)
		default:
			out = slices.Insert(out, -d, 0)
		}
	}
	return out, nil
}
