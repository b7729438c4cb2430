// Package rookzero is your in-memory playground for the 0-rook monoid —
// partial injective placements, their Lehmer-style codes, generator
// actions and canonical words.
//
// 🚀 What is rookzero?
//
//	A deterministic, exhaustively verifiable library that brings together:
//		• Rook vectors: partial injective maps on {1..n}, validated & acted on
//		• R-codes: the recursive coding of rook vectors, with bounds & validity
//		• A bijective codec: Encode (rook → code) and Decode (code → rook)
//		• Generator actions: π(t) on rooks and on codes, branch by branch
//		• Words: code → canonical generator word, canonizer & reduction checks
//		• Enumeration & counting: visitors, materializers and closed forms
//		• A verification harness: the commuting square over whole ranks
//
// ✨ Why choose rookzero?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every action is cross-checked two ways
//   - Deterministic – no randomness anywhere in the core packages
//   - Extensible – add custom hooks (OnBranch…) for tracing & statistics
//
// Under the hood, everything is organized under focused subpackages:
//
//	rook/   — the Rook vector type, validation and the generator action
//	code/   — R-codes: bounds, validity, codec and the code-side action
//	word/   — generator words, canonical forms and reduction predicates
//	enum/   — exhaustive enumeration plus closed-form counting
//	verify/ — the property harness tying all of the above together
//
// Quick ASCII example (n = 5):
//
//	    rook  (2,0,3,0,4)   ──Encode──▶   code (0,1,2,4,-1)
//	      │                                 │
//	    π(t)                              π(t)
//	      ▼                                 ▼
//	    rook'               ◀──Decode──   code'
//
//	the square commutes for every generator t in 0..n-1.
//
// Dive into README.md for full examples and the rookzero CLI reference.
//
//	go get github.com/qmonoid/rookzero
package rookzero
