// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep kernels minimal by delegating nil/shape/worker/range checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape), which is
//    the error priority documented in errors.go.

package matrix

import (
	"fmt"
	"math"
)

// MaxCells is the largest rows*cols a Dense may hold. It keeps the cell
// count representable as int and the backing buffer within what make accepts.
const MaxCells = min(math.MaxInt32, math.MaxInt/elementBytes)

// elementBytes is the in-memory size of one Element.
const elementBytes = 4

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows >= 1, cols >= 1 and rows*cols <= MaxCells.
// Non-positive dimensions return the plain ErrInvalidDimensions sentinel so
// constructors can return it as-is; an oversized shape wraps it with the size.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if cols > MaxCells/rows { // division form: rows*cols itself may overflow
		return validatorErrorf("ValidateShape",
			fmt.Errorf("%dx%d exceeds %d cells: %w", rows, cols, MaxCells, ErrInvalidDimensions))
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is treated as nil as well.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d * %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateDestination ensures dst is non-nil and has shape rows×cols.
// Used by the *Into kernels, which write into caller-owned storage.
func ValidateDestination(dst Matrix, rows, cols int) error {
	if err := ValidateNotNil(dst); err != nil {
		return validatorErrorf("ValidateDestination", err)
	}
	if dst.Rows() != rows || dst.Cols() != cols {
		return validatorErrorf("ValidateDestination",
			fmt.Errorf("dst is %dx%d, want %dx%d: %w", dst.Rows(), dst.Cols(), rows, cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateWorkerCount ensures at least one worker was requested.
// There is no upper bound: oversubscription beyond the hardware threads
// and beyond the number of output cells is legal.
func ValidateWorkerCount(workers int) error {
	if workers < 1 {
		return validatorErrorf("ValidateWorkerCount", fmt.Errorf("got %d: %w", workers, ErrInvalidWorkerCount))
	}

	return nil
}

// ValidateRange ensures low <= high for an inclusive sampling range.
func ValidateRange(low, high Element) error {
	if low > high {
		return validatorErrorf("ValidateRange", fmt.Errorf("[%d, %d]: %w", low, high, ErrInvalidRange))
	}

	return nil
}
