// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and kernels MUST return these sentinels (possibly
// wrapped with call-site context) and tests MUST check them via errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with fmt.Errorf("Op: %w", ErrX) at the detection site; callers still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> worker count -> dimension mismatch -> destination shape.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive or that rows*cols exceeds MaxCells.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrEmptyMatrix is returned when a matrix is built from zero rows.
	ErrEmptyMatrix = errors.New("matrix: no rows")

	// ErrShapeMismatch is returned when row data is ragged (rows of different
	// length) or the first row is empty.
	ErrShapeMismatch = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Mul where
	// left.Cols != right.Rows, or a destination of the wrong shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidRange is returned by the generator when low > high.
	ErrInvalidRange = errors.New("matrix: invalid value range")

	// ErrInvalidWorkerCount is returned when a partitioned multiply is asked
	// for fewer than one worker.
	ErrInvalidWorkerCount = errors.New("matrix: worker count must be >= 1")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
