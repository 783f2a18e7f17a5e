// Package axis_test provides benchmarks for axis alignment, comparing the
// sorted fast path with the positional fallback.
package axis_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvaxis/axis"
)

var benchSizes = []int{1_000, 10_000}

// sinks to defeat dead-code elimination
var (
	sinkB bool
	sinkP int
)

func evens(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 2 * i
	}

	return out
}

func odds(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 2*i + 1
	}

	return out
}

func BenchmarkMergeSorted(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			other := axis.New(odds(n))
			base := evens(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a := axis.New(base)
				sinkB = a.Merge(other)
			}
		})
	}
}

func BenchmarkMergeUnsorted(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			other := axis.New(odds(n), axis.WithSorted(false))
			base := evens(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a := axis.New(base)
				sinkB = a.Merge(other)
			}
		})
	}
}

func BenchmarkPosition(b *testing.B) {
	for _, kind := range []axis.IndexKind{axis.HashIndex, axis.OrderedIndex} {
		b.Run(kind.String(), func(b *testing.B) {
			a := axis.New(evens(10_000), axis.WithIndex(kind))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkP, _ = a.Find(2 * (i % 10_000))
			}
		})
	}
}
