package enum_test

import (
	"testing"

	"github.com/qmonoid/rookzero/code"
	"github.com/qmonoid/rookzero/enum"
	"github.com/qmonoid/rookzero/rook"
)

// BenchmarkEachCode walks all 130,922 rank-7 codes per iteration.
func BenchmarkEachCode(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		count := 0
		_ = enum.EachCode(7, func(code.Code) bool {
			count++
			return true
		})
		if count != 130922 {
			b.Fatalf("unexpected count %d", count)
		}
	}
}

// BenchmarkEachRook walks the same rank through the value-choosing
// enumeration.
func BenchmarkEachRook(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		count := 0
		_ = enum.EachRook(7, func(rook.Rook) bool {
			count++
			return true
		})
		if count != 130922 {
			b.Fatalf("unexpected count %d", count)
		}
	}
}

// BenchmarkCounterRooks measures the cold closed form up to the top
// supported rank, fresh memo tables every iteration.
func BenchmarkCounterRooks(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ct := enum.NewCounter()
		if _, err := ct.Rooks(enum.MaxCountSize); err != nil {
			b.Fatal(err)
		}
	}
}
