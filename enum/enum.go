package enum

import (
	"fmt"

	"github.com/qmonoid/rookzero/code"
	"github.com/qmonoid/rookzero/rook"
)

// EachCode streams every valid code of rank n in lexicographic order,
// entries compared numerically, and calls visit for each one. The
// visitor receives a shared buffer that the walk keeps reusing; Clone
// it to retain. Returning false stops the walk early.
//
// Codes are grown by prefix extension: after a prefix with insertion
// bound m, position i admits exactly the entries -m, …, i+1.
func EachCode(n int, visit func(c code.Code) bool) error {
	if n < 0 || n > MaxEnumSize {
		return fmt.Errorf("%w: n=%d, enumeration supports [0, %d]", ErrSizeRange, n, MaxEnumSize)
	}
	buf := make(code.Code, 0, n)
	eachCode(n, buf, 0, visit)
	return nil
}

// eachCode extends prefix, whose insertion bound is m, to full rank n.
// It reports false once a visitor asked to stop.
func eachCode(n int, prefix code.Code, m int, visit func(code.Code) bool) bool {
	if len(prefix) == n {
		return visit(prefix)
	}
	i := len(prefix)
	for d := -m; d <= i+1; d++ {
		// Fold the bound exactly as code.Bound would on prefix·d.
		next := m + 1
		switch {
		case d <= 0:
			next = -d
		case d > m+1:
			next = m
		}
		if !eachCode(n, append(prefix, d), next, visit) {
			return false
		}
	}
	return true
}

// EachRook streams every valid rook vector of rank n and calls visit
// for each one, under the same buffer and early-stop contract as
// EachCode. Positions choose 0 first, then the unused values in
// ascending order.
//
// The walk is independent of the code enumeration and of the codec, so
// comparing the two element sets is a genuine cross-check.
func EachRook(n int, visit func(r rook.Rook) bool) error {
	if n < 0 || n > MaxEnumSize {
		return fmt.Errorf("%w: n=%d, enumeration supports [0, %d]", ErrSizeRange, n, MaxEnumSize)
	}
	buf := make(rook.Rook, 0, n)
	used := make([]bool, n+1)
	eachRook(n, buf, used, visit)
	return nil
}

// eachRook extends prefix to full rank n, tracking consumed values.
func eachRook(n int, prefix rook.Rook, used []bool, visit func(rook.Rook) bool) bool {
	if len(prefix) == n {
		return visit(prefix)
	}
	if !eachRook(n, append(prefix, 0), used, visit) {
		return false
	}
	for v := 1; v <= n; v++ {
		if used[v] {
			continue
		}
		used[v] = true
		ok := eachRook(n, append(prefix, v), used, visit)
		used[v] = false
		if !ok {
			return false
		}
	}
	return true
}

// Codes materializes the full code list of rank n, in EachCode order,
// each element independently allocated. Capacity comes from the closed
// form, so the slice never reallocates.
func Codes(n int) ([]code.Code, error) {
	total, err := sizeHint(n)
	if err != nil {
		return nil, err
	}
	out := make([]code.Code, 0, total)
	if err := EachCode(n, func(c code.Code) bool {
		out = append(out, c.Clone())
		return true
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Rooks materializes the full rook list of rank n, in EachRook order,
// each element independently allocated.
func Rooks(n int) ([]rook.Rook, error) {
	total, err := sizeHint(n)
	if err != nil {
		return nil, err
	}
	out := make([]rook.Rook, 0, total)
	if err := EachRook(n, func(r rook.Rook) bool {
		out = append(out, r.Clone())
		return true
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// sizeHint validates n for materialization and returns the exact
// element count from the closed form.
func sizeHint(n int) (int, error) {
	if n < 0 || n > MaxEnumSize {
		return 0, fmt.Errorf("%w: n=%d, enumeration supports [0, %d]", ErrSizeRange, n, MaxEnumSize)
	}
	total, err := NewCounter().Rooks(n)
	if err != nil {
		return 0, err
	}
	return int(total), nil
}
