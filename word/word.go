package word

import (
	"fmt"
	"slices"

	"github.com/qmonoid/rookzero/code"
	"github.com/qmonoid/rookzero/rook"
)

// FromCode emits the canonical generator word of c, reading the code
// left to right. A positive entry d at position i contributes the
// descending run i, i-1, …, d (empty when d = i+1); a nonpositive
// entry -j contributes the full descent i, …, 0 followed by the ascent
// 1, …, j. The identity code yields the empty word.
//
// Complexity: O(n²) output size in the worst case.
func FromCode(c code.Code) (Word, error) {
	if err := code.Validate(c); err != nil {
		return nil, err
	}
	w := make(Word, 0, 2*len(c))
	for i, d := range c {
		if d > 0 {
			for g := i; g >= d; g-- {
				w = append(w, g)
			}
			continue
		}
		for g := i; g >= 0; g-- {
			w = append(w, g)
		}
		for g := 1; g <= -d; g++ {
			w = append(w, g)
		}
	}
	return w, nil
}

// MinRank returns the smallest rank hosting every letter of w: one
// more than the largest letter, zero for the empty word.
func MinRank(w Word) int {
	m := -1
	for _, g := range w {
		if g > m {
			m = g
		}
	}
	return m + 1
}

// Apply folds w over the identity code of the given rank and returns
// the code it lands on. The rank must be at least MinRank(w).
func Apply(w Word, rank int) (code.Code, error) {
	if err := validate(w); err != nil {
		return nil, err
	}
	if rank < MinRank(w) {
		return nil, fmt.Errorf("%w: rank %d, need at least %d", ErrRankRange, rank, MinRank(w))
	}
	c := code.Identity(rank)
	for _, g := range w {
		next, err := code.Act(c, g)
		if err != nil {
			return nil, err
		}
		c = next
	}
	return c, nil
}

// Canonize rewrites w into the canonical word of the monoid element it
// represents: apply at minimal rank, then read the canonical word off
// the resulting code. Canonical words are fixed points of Canonize.
func Canonize(w Word) (Word, error) {
	c, err := Apply(w, MinRank(w))
	if err != nil {
		return nil, err
	}
	return FromCode(c)
}

// IsActionReduced reports whether every letter of w moves the rook it
// acts on, folding w over the identity rook of minimal rank. A fixed
// step anywhere makes the word non-reduced; the empty word is reduced.
func IsActionReduced(w Word) (bool, error) {
	if err := validate(w); err != nil {
		return false, err
	}
	r := rook.Identity(MinRank(w))
	for _, g := range w {
		next, err := rook.Act(r, g)
		if err != nil {
			return false, err
		}
		if slices.Equal(next, r) {
			return false, nil
		}
		r = next
	}
	return true, nil
}

// validate reports the first negative letter of w.
func validate(w Word) error {
	for i, g := range w {
		if g < 0 {
			return fmt.Errorf("%w: letter %d at index %d", ErrGeneratorRange, g, i)
		}
	}
	return nil
}
