package rook_test

import (
	"testing"

	"github.com/qmonoid/rookzero/rook"
)

// BenchmarkAct measures one mid-vector generator application at rank N,
// validation included.
func BenchmarkAct(b *testing.B) {
	const N = 1024
	r := rook.Identity(N)

	b.ReportAllocs()
	b.SetBytes(int64(N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = rook.Act(r, N/2)
	}
}

// BenchmarkValidate measures structural validation of a dense rank-N
// vector in isolation.
func BenchmarkValidate(b *testing.B) {
	const N = 1024
	r := rook.Identity(N)

	b.ReportAllocs()
	b.SetBytes(int64(N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = rook.Validate(r)
	}
}
