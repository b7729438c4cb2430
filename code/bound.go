package code

// Bound computes the insertion bound m(w) of a prefix w by its direct
// recursive definition:
//
//	m(())  = 0
//	m(w·d) = -d            if d ≤ 0
//	m(w·d) = m(w) + 1      if 0 < d ≤ m(w)+1
//	m(w·d) = m(w)          otherwise
//
// The bound caps how deep the next nonpositive entry may reach: after
// prefix w, an entry d is admissible iff -m(w) ≤ d ≤ len(w)+1.
//
// Contract: pure, the input is never mutated; defined for arbitrary
// integer sequences, not only valid prefixes.
// Complexity: O(n) time, O(n) stack.
func Bound(w Code) int {
	if len(w) == 0 {
		return 0
	}
	d := w[len(w)-1]
	if d <= 0 {
		return -d
	}
	mw := Bound(w[:len(w)-1])
	if d <= mw+1 {
		return mw + 1
	}
	return mw
}

// BoundFast computes the same quantity without recursion: locate the
// last nonpositive entry, then count how many of the positive entries
// after it raise the running bound, scanning them left to right.
//
// Contract: agreement with Bound is guaranteed on prefixes of valid
// codes; on arbitrary sequences the two may differ.
// Complexity: O(n) time, O(1) memory.
func BoundFast(w Code) int {
	// 1. Locate the rightmost nonpositive entry.
	anchor := -1
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] <= 0 {
			anchor = i
			break
		}
	}
	// 2. All-positive valid prefixes raise the bound at every step.
	if anchor < 0 {
		return len(w)
	}
	// 3. Fold the positive tail after the anchor.
	k1 := -w[anchor]
	k2 := 0
	for i := anchor + 1; i < len(w); i++ {
		if w[i] <= k1+k2+1 {
			k2++
		}
	}
	return k1 + k2
}
