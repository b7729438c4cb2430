package code

import "fmt"

// Identity returns the code (1, 2, …, n), which encodes the identity
// rook of rank n. Identity(0) is the empty code.
func Identity(n int) Code {
	out := make(Code, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// IsCode reports whether c satisfies the per-position inequalities
// -m(c[:i]) ≤ c[i] ≤ i+1. Every prefix of a valid code is itself valid.
func IsCode(c Code) bool {
	return Validate(c) == nil
}

// Validate checks the same inequalities as IsCode in one forward pass,
// folding the insertion bound as it goes, and reports the first
// violation as a wrapped ErrInvalidCode; nil means c is valid.
func Validate(c Code) error {
	m := 0
	for i, d := range c {
		if d < -m || d > i+1 {
			return fmt.Errorf("%w: position %d value %d outside [%d, %d]",
				ErrInvalidCode, i+1, d, -m, i+1)
		}
		// Fold the bound exactly as Bound would on the extended prefix.
		switch {
		case d <= 0:
			m = -d
		case d <= m+1:
			m++
		}
	}
	return nil
}
