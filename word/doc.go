// Package word turns R-codes into canonical generator words and
// canonizes arbitrary generator words through the code action.
//
// A word lists generator indices in application order. FromCode emits
// the canonical word of a code, Canonize rewrites any word into the
// canonical word of the element it represents, and IsActionReduced
// checks that every letter moves the rook it acts on.
//
// Ranks are picked minimally: a word whose largest letter is g acts
// naturally on rank g+1, and whether a step is a fixed point does not
// change on larger ranks. Callers who care about a specific rank can
// use Apply directly.
//
// Errors:
//
//   - ErrGeneratorRange  if a word contains a negative letter.
//   - ErrRankRange       if Apply's rank cannot host the largest letter.
package word
