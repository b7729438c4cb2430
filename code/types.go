package code

import (
	"errors"
	"strconv"
	"strings"
)

// Code is the R-code of a rook vector. See the package documentation
// for the defining inequalities. The zero-length Code encodes the
// empty rook.
type Code []int

// Sentinel errors returned by code operations.
var (
	// ErrInvalidCode indicates a sequence violating the per-position bounds.
	ErrInvalidCode = errors.New("code: sequence violates per-position bounds")

	// ErrEmptyCode indicates an action request on the zero-length code.
	ErrEmptyCode = errors.New("code: empty code admits no generator")

	// ErrGeneratorRange indicates a generator index t outside [0, n-1].
	ErrGeneratorRange = errors.New("code: generator index out of range")

	// ErrNotRook indicates an encoding request for an invalid rook vector.
	ErrNotRook = errors.New("code: input is not a valid rook")
)

// Branch labels the dispatch arm taken at one level of the Act
// recursion. Values are stable; String yields compact names suitable
// for traces and counters.
type Branch int

const (
	// BranchUnit is the length-1 base case; the result is always (0).
	BranchUnit Branch = iota
	// BranchPosFixed fires for positive last entry d with t = d: fixed point.
	BranchPosFixed
	// BranchPosLower fires for positive last entry d with t = d-1: the
	// last entry drops to d-1.
	BranchPosLower
	// BranchPosKeep fires for positive last entry d with t < d-1: the
	// prefix absorbs t, the last entry rides along unchanged.
	BranchPosKeep
	// BranchPosShift fires for positive last entry d with t > d: the
	// prefix absorbs t-1, the last entry rides along unchanged.
	BranchPosShift
	// BranchNegFixed fires for last entry -i with t = i: fixed point.
	BranchNegFixed
	// BranchNegKeep fires for last entry -i with 0 < t < i: the prefix
	// absorbs t, the last entry rides along unchanged.
	BranchNegKeep
	// BranchNegShift fires for last entry -i with t > i+1: the prefix
	// absorbs t-1, the last entry rides along unchanged.
	BranchNegShift
	// BranchNegSweep fires for last entry -i with t = 0: generators
	// 0..i-1 sweep the prefix in order, then 0 is appended.
	BranchNegSweep
	// BranchNegSaturated fires for last entry -i with t = i+1 when the
	// prefix bound equals i: fixed point.
	BranchNegSaturated
	// BranchNegGrow fires for last entry -i with t = i+1 when the prefix
	// bound exceeds i: the last entry deepens to -(i+1).
	BranchNegGrow
)

// branchNames backs Branch.String; order must match the constants.
var branchNames = [...]string{
	"Unit",
	"PosFixed",
	"PosLower",
	"PosKeep",
	"PosShift",
	"NegFixed",
	"NegKeep",
	"NegShift",
	"NegSweep",
	"NegSaturated",
	"NegGrow",
}

// String returns the stable name of b, or "Branch(k)" for values
// outside the known range.
func (b Branch) String() string {
	if b < 0 || int(b) >= len(branchNames) {
		return "Branch(" + strconv.Itoa(int(b)) + ")"
	}
	return branchNames[b]
}

// Options configures Act. The zero value runs without hooks.
type Options struct {
	// OnBranch, when non-nil, fires once per recursion level with the
	// depth (0 at the outermost call), the branch taken, the code the
	// level dispatched on and the generator index in effect there.
	// The code slice is a live view; hooks must not retain or mutate it.
	OnBranch func(depth int, br Branch, c Code, t int)
}

// Option mutates Options before Act runs.
type Option func(*Options)

// DefaultOptions returns the hook-free configuration.
func DefaultOptions() Options {
	return Options{}
}

// WithOnBranch installs fn as the per-level dispatch hook of Act.
func WithOnBranch(fn func(depth int, br Branch, c Code, t int)) Option {
	return func(o *Options) { o.OnBranch = fn }
}

// emit fires the hook when one is installed.
func (o *Options) emit(depth int, br Branch, c Code, t int) {
	if o.OnBranch != nil {
		o.OnBranch(depth, br, c, t)
	}
}

// Clone returns an independent copy of c.
func (c Code) Clone() Code {
	out := make(Code, len(c))
	copy(out, c)
	return out
}

// String renders c in tuple form, e.g. "(0,1,2,4,-1)".
// The empty code renders as "()".
func (c Code) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, d := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(d))
	}
	sb.WriteByte(')')
	return sb.String()
}
