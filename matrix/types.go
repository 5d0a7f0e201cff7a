// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense container and the kernels.
package matrix

// Element is the fixed-width signed integer stored in every matrix cell.
// All arithmetic on Element wraps modulo 2^32; kernels never widen the
// accumulator, so products of large operands overflow silently.
type Element = int32

// Matrix is the read-only view of a two-dimensional Element grid.
// Validators and helpers accept it; kernels take *Dense directly so they
// can index the flat buffer.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (Element, error)
}
