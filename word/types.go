package word

import (
	"errors"
	"strconv"
	"strings"
)

// Word is a finite sequence of generator indices applied left to
// right: the word (1, 0, 1) means π(1) first, then π(0), then π(1).
// The empty word is the identity.
type Word []int

// Sentinel errors returned by word operations.
var (
	// ErrGeneratorRange indicates a negative letter.
	ErrGeneratorRange = errors.New("word: negative generator index")

	// ErrRankRange indicates a target rank too small for the word.
	ErrRankRange = errors.New("word: rank too small for the word's letters")
)

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	out := make(Word, len(w))
	copy(out, w)
	return out
}

// String renders w in bracket form, e.g. "[1,0,1]".
// The empty word renders as "[]".
func (w Word) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, g := range w {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(g))
	}
	sb.WriteByte(']')
	return sb.String()
}
