package code

import "fmt"

// Act applies the generator π(t) to the code c and returns the result
// as a fresh code, without ever decoding to a rook vector. The dispatch
// inspects only the last entry and recurses on the prefix; install
// WithOnBranch to observe every arm the recursion takes.
//
// The action mirrors rook.Act through the codec: for every valid c and
// admissible t,
//
//	Decode(Act(c, t)) == rook.Act(Decode(c), t)
//
// Contract: c is validated first and never mutated; the result is a
// valid code of the same length.
// Complexity: O(n) levels of O(n) copying, plus one O(n·i) sweep when
// a BranchNegSweep arm fires; O(n²) overall.
//
// Errors: ErrEmptyCode for the zero-length code, ErrGeneratorRange for
// t outside [0, n-1], ErrInvalidCode for malformed input.
func Act(c Code, t int, opts ...Option) (Code, error) {
	// 1. Resolve options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 2. Validate the code and the generator index.
	if err := Validate(c); err != nil {
		return nil, err
	}
	if len(c) == 0 {
		return nil, ErrEmptyCode
	}
	if t < 0 || t >= len(c) {
		return nil, fmt.Errorf("%w: t=%d with n=%d", ErrGeneratorRange, t, len(c))
	}
	// 3. Run the recursion.
	return act(c, t, 0, &o), nil
}

// act is the unchecked recursive worker behind Act. It treats c as a
// read-only view owned by the caller and always returns fresh storage.
// Preconditions (maintained by Act and by every recursive call):
// c is a valid code, len(c) ≥ 1 and 0 ≤ t < len(c).
func act(c Code, t, depth int, o *Options) Code {
	n := len(c)
	last := c[n-1]

	// Base case: the two rank-1 codes (0) and (1) both map to (0)
	// under the only generator π(0).
	if n == 1 {
		o.emit(depth, BranchUnit, c, t)
		return Code{0}
	}

	if last >= 1 {
		switch {
		case t == last:
			o.emit(depth, BranchPosFixed, c, t)
			return c.Clone()
		case t == last-1:
			o.emit(depth, BranchPosLower, c, t)
			out := c.Clone()
			out[n-1] = last - 1
			return out
		case t < last-1:
			o.emit(depth, BranchPosKeep, c, t)
			return append(act(c[:n-1], t, depth+1, o), last)
		default: // t > last
			o.emit(depth, BranchPosShift, c, t)
			return append(act(c[:n-1], t-1, depth+1, o), last)
		}
	}

	i := -last
	switch {
	case t == i:
		o.emit(depth, BranchNegFixed, c, t)
		return c.Clone()
	case 0 < t && t < i:
		o.emit(depth, BranchNegKeep, c, t)
		return append(act(c[:n-1], t, depth+1, o), last)
	case t > i+1:
		o.emit(depth, BranchNegShift, c, t)
		return append(act(c[:n-1], t-1, depth+1, o), last)
	case t == 0:
		// Clearing sweep: π(0), π(1), …, π(i-1) walk the vacated slot
		// through the prefix, then the cleared slot reattaches as 0.
		// Here i ≥ 1, so every swept generator is admissible on the
		// length n-1 prefix.
		o.emit(depth, BranchNegSweep, c, t)
		w := c[:n-1].Clone()
		for g := 0; g < i; g++ {
			w = act(w, g, depth+1, o)
		}
		return append(w, 0)
	default: // t == i+1
		if Bound(c[:n-1]) == i {
			o.emit(depth, BranchNegSaturated, c, t)
			return c.Clone()
		}
		o.emit(depth, BranchNegGrow, c, t)
		out := c.Clone()
		out[n-1] = -(i + 1)
		return out
	}
}
