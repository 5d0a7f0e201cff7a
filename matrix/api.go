// SPDX-License-Identifier: MIT

// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical
//     constructors and kernels. No facade duplicates a loop.

package matrix

// NewZeros returns a new zero-initialized rows×cols *Dense.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// ProductShape returns the shape of left × right without computing it.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ProductShape(left, right Matrix) (rows, cols int, err error) {
	if err = ValidateMulCompatible(left, right); err != nil {
		return 0, 0, matrixErrorf("ProductShape", err)
	}

	return left.Rows(), right.Cols(), nil
}

// Product is an alias for Mul when workers is 0 or 1 and MulParallel otherwise.
// Unlike MulParallel it treats workers == 0 as "sequential"; negative counts
// still fail with ErrInvalidWorkerCount.
func Product(left, right *Dense, workers int) (*Dense, error) {
	if workers == 0 || workers == 1 {
		return Mul(left, right)
	}

	return MulParallel(left, right, workers)
}
