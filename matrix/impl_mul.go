// SPDX-License-Identifier: MIT

// Package matrix - naive triple-loop multiplication.
//
// Purpose:
//   - Compute C = A × B with the textbook i→j→k loop nest over the flat
//     row-major buffers, the reference workload being benchmarked.
//
// Numeric policy:
//   - The accumulator is an Element (int32). Overflow wraps silently; it is
//     neither checked nor widened, so results stay comparable with other
//     fixed-width implementations of the same workload.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the result.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul             = "Mul"
	opMulInto         = "MulInto"
	opMulParallel     = "MulParallel"
	opMulParallelInto = "MulParallelInto"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product left × right in a freshly allocated matrix.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (left.Cols == right.Rows) before anything is allocated.
//   - Stage 2: allocate the zero result left.Rows × right.Cols.
//   - Stage 3: run the sequential kernel.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Mul(left, right *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(left, right); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(left.r, right.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	mulCells(left, right, res, 0, left.r*right.c)

	return res, nil
}

// MulInto computes left × right into dst, which must be left.Rows × right.Cols.
// Every cell of dst is overwritten; its prior contents do not matter.
// Benchmarks use it to keep the result allocation out of the timed region.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (operands or destination shape).
func MulInto(dst, left, right *Dense) error {
	if err := ValidateMulCompatible(left, right); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := ValidateDestination(dst, left.r, right.c); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	mulCells(left, right, dst, 0, left.r*right.c)

	return nil
}

// mulCells computes the output cells whose flattened row-major index lies in
// [low, high). Each index ix maps to (ix / cols, ix % cols) and receives the
// full reduction over the shared dimension. Preconditions are the caller's:
// shapes are compatible and 0 <= low <= high <= res.r*res.c.
//
// The sequential path calls it once over the whole index space, which walks
// cells in exactly the i→j order of the textbook loop nest; the partitioned
// path calls it once per worker.
func mulCells(left, right, res *Dense, low, high int) {
	var (
		ix, i, j, k int
		inner       = left.c  // shared dimension
		cols        = right.c // result columns
		rowOffsetL  int
		acc         Element
	)
	for ix = low; ix < high; ix++ {
		i = ix / cols
		j = ix - i*cols
		rowOffsetL = i * inner
		acc = 0
		for k = 0; k < inner; k++ {
			acc += left.data[rowOffsetL+k] * right.data[k*cols+j] // int32 wraparound
		}
		res.data[ix] = acc
	}
}
