package rook

import (
	"errors"
	"strconv"
	"strings"
)

// Rook is a rank-n element of the 0-rook monoid, stored as a dense
// vector of n entries. Entry r[i] describes position i+1: zero marks an
// empty position, a nonzero value v means the placement sends position
// i+1 to v. Nonzero entries are pairwise distinct and drawn from 1..n.
//
// The zero-length Rook is the unique rank-0 element.
type Rook []int

// Sentinel errors returned by rook operations.
var (
	// ErrValueRange indicates an entry outside the closed interval [0, n].
	ErrValueRange = errors.New("rook: entry outside [0, n]")

	// ErrDuplicateValue indicates a nonzero value occurring at two positions.
	ErrDuplicateValue = errors.New("rook: duplicate nonzero entry")

	// ErrGeneratorRange indicates a generator index t outside [0, n-1].
	ErrGeneratorRange = errors.New("rook: generator index out of range")
)

// Clone returns an independent copy of r.
func (r Rook) Clone() Rook {
	out := make(Rook, len(r))
	copy(out, r)
	return out
}

// String renders r in tuple form, e.g. "(2,0,3,0,4)".
// The empty rook renders as "()".
func (r Rook) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range r {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(')')
	return sb.String()
}
