package rook

import "fmt"

// Identity returns the full placement (1, 2, …, n), the unit of the
// rank-n monoid. Identity(0) is the empty rook.
func Identity(n int) Rook {
	out := make(Rook, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// IsRook reports whether r is a structurally valid rook vector: every
// entry lies in [0, n] and nonzero entries are pairwise distinct.
func IsRook(r Rook) bool {
	return Validate(r) == nil
}

// Validate checks the same conditions as IsRook and reports the first
// violation as a wrapped ErrValueRange or ErrDuplicateValue; nil means
// r is valid.
func Validate(r Rook) error {
	n := len(r)
	seen := make([]bool, n+1)
	for i, v := range r {
		if v < 0 || v > n {
			return fmt.Errorf("%w: position %d holds %d with n=%d", ErrValueRange, i+1, v, n)
		}
		if v == 0 {
			continue
		}
		if seen[v] {
			return fmt.Errorf("%w: value %d occurs twice", ErrDuplicateValue, v)
		}
		seen[v] = true
	}
	return nil
}

// Zeros counts the empty positions of r.
func Zeros(r Rook) int {
	z := 0
	for _, v := range r {
		if v == 0 {
			z++
		}
	}
	return z
}

// Act applies the generator π(t) to r and returns the result as a fresh
// vector. π(0) forces position 1 to 0; π(t) for t ≥ 1 leaves r unchanged
// when r[t-1] ≥ r[t] and swaps the two entries otherwise.
//
// The input is validated first; Act never mutates r.
func Act(r Rook, t int) (Rook, error) {
	// 1. Validate the vector itself.
	if err := Validate(r); err != nil {
		return nil, err
	}
	// 2. Validate the generator index against the rank.
	if t < 0 || t >= len(r) {
		return nil, fmt.Errorf("%w: t=%d with n=%d", ErrGeneratorRange, t, len(r))
	}
	// 3. Apply the action on a copy.
	out := r.Clone()
	if t == 0 {
		out[0] = 0
		return out, nil
	}
	if out[t-1] >= out[t] {
		return out, nil
	}
	out[t-1], out[t] = out[t], out[t-1]
	return out, nil
}
