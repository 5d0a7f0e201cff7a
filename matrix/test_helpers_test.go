// Package matrix_test provides shared helpers for matrix tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matbench/matrix"
)

// MustDense ALLOCATES an r×c zero matrix or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a matrix from a 2D literal or fails the test.
func MustRows(tb testing.TB, rows [][]matrix.Element) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) matrix.Element {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandDense RETURNS a deterministic r×c matrix drawn from [lo, hi] with seed.
func RandDense(tb testing.TB, r, c int, lo, hi matrix.Element, seed int64) *matrix.Dense {
	tb.Helper()
	g, err := matrix.NewGenerator(lo, hi, matrix.WithSeed(seed))
	if err != nil {
		tb.Fatalf("NewGenerator: %v", err)
	}
	m, err := g.Generate(r, c)
	if err != nil {
		tb.Fatalf("Generate(%d,%d): %v", r, c, err)
	}

	return m
}

// CompareExact ASSERTS strict equality between a matrix and a 2D literal,
// failing with the first mismatching coordinate.
func CompareExact(tb testing.TB, want [][]matrix.Element, m matrix.Matrix) {
	tb.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		tb.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v matrix.Element
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			tb.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(tb, m, i, j); v != want[i][j] {
				tb.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}
