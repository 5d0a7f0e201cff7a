// Package matrix provides the dense int32 matrix and the naive
// multiplication kernels measured by matbench.
//
// The matrix package provides:
//
//   - Dense, an owned row-major container with bounds-checked At/Set.
//   - Generator, a seeded uniform random filler for reproducible runs.
//   - Mul / MulInto, the sequential i→j→k triple loop.
//   - MulParallel / MulParallelInto, the same reduction spread over a fixed
//     number of goroutines by contiguous partitions of the flattened output.
//   - Partitions, the partition arithmetic on its own.
//
// Arithmetic is fixed-width: products and sums wrap modulo 2^32 exactly as
// int32 does in Go. Every precondition violation is reported as a sentinel
// error (see errors.go) before any computation starts.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]matrix.Element{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]matrix.Element{{5, 6}, {7, 8}})
//	c, _ := matrix.MulParallel(a, b, 3)
//	fmt.Print(c) // 2x2 / 19,22, / 43,50,
package matrix
