// Package matrix_test provides benchmarks for the multiplication kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matbench/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM   *matrix.Dense
	sinkErr error
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, matrix.DefaultLow, matrix.DefaultHigh, 1337)
			B := RandDense(b, n, n, matrix.DefaultLow, matrix.DefaultHigh, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulParallel(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, w := range []int{1, 2, 4, 8} {
			b.Run(fmt.Sprintf("n=%d/w=%d", n, w), func(b *testing.B) {
				A := RandDense(b, n, n, matrix.DefaultLow, matrix.DefaultHigh, 11)
				B := RandDense(b, n, n, matrix.DefaultLow, matrix.DefaultHigh, 22)
				dst := MustDense(b, n, n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkErr = matrix.MulParallelInto(dst, A, B, w)
				}
				sinkM = dst
			})
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	g, err := matrix.NewGenerator(matrix.DefaultLow, matrix.DefaultHigh, matrix.WithSeed(13))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		sinkM, sinkErr = g.Generate(256, 256)
	}
}
