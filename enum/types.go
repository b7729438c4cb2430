package enum

import "errors"

const (
	// MaxEnumSize is the largest rank EachCode, EachRook and the
	// materializers accept; rank 9 already holds 17,572,114 elements.
	MaxEnumSize = 9

	// MaxCountSize is the largest rank the int64 closed forms cover
	// without overflow.
	MaxCountSize = 18
)

// ErrSizeRange indicates a rank outside the supported interval of the
// requested operation.
var ErrSizeRange = errors.New("enum: rank out of supported range")
