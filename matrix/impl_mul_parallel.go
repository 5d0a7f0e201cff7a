// SPDX-License-Identifier: MIT

// Package matrix - partitioned multiplication.
//
// Purpose:
//   - Spread the output cells of C = A × B over a fixed number of goroutines.
//     The flattened index space [0, rows*cols) is cut into contiguous
//     partitions (see Partitions) and every partition gets its own goroutine.
//
// Concurrency:
//   - Workers are spawned fresh on every call and joined with a WaitGroup
//     before the call returns; the result is complete once it is visible.
//   - Partitions are disjoint, so no two workers write the same cell and the
//     result buffer needs no locking. Operands are only read.
//   - Empty partitions still get a goroutine; it returns immediately.
//   - There is no cancellation: a call always runs to completion.

package matrix

import "sync"

// MulParallel returns left × right computed by workers goroutines.
// The result is cell-for-cell identical to Mul(left, right).
//
// Implementation:
//   - Stage 1: validate operands non-nil, workers >= 1, left.Cols == right.Rows.
//   - Stage 2: allocate the zero result.
//   - Stage 3: fan out one goroutine per partition and wait for all of them.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidWorkerCount, ErrDimensionMismatch.
func MulParallel(left, right *Dense, workers int) (*Dense, error) {
	if err := validateParallel(left, right, workers); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	res, err := NewDense(left.r, right.c)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	if err = mulPartitioned(left, right, res, workers); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	return res, nil
}

// MulParallelInto is the destination-passing form of MulParallel.
// dst must be left.Rows × right.Cols; every cell is overwritten.
func MulParallelInto(dst, left, right *Dense, workers int) error {
	if err := validateParallel(left, right, workers); err != nil {
		return matrixErrorf(opMulParallelInto, err)
	}
	if err := ValidateDestination(dst, left.r, right.c); err != nil {
		return matrixErrorf(opMulParallelInto, err)
	}

	if err := mulPartitioned(left, right, dst, workers); err != nil {
		return matrixErrorf(opMulParallelInto, err)
	}

	return nil
}

// validateParallel applies the documented priority: nil → workers → shape.
func validateParallel(left, right *Dense, workers int) error {
	if err := ValidateNotNil(left); err != nil {
		return err
	}
	if err := ValidateNotNil(right); err != nil {
		return err
	}
	if err := ValidateWorkerCount(workers); err != nil {
		return err
	}

	return ValidateMulCompatible(left, right)
}

// mulPartitioned runs one goroutine per partition over res and blocks until
// all of them have finished.
func mulPartitioned(left, right, res *Dense, workers int) error {
	parts, err := Partitions(left.r*right.c, workers)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(len(parts))
	for _, p := range parts {
		go func(p Partition) {
			defer wg.Done()
			mulCells(left, right, res, p.Low, p.High)
		}(p)
	}
	wg.Wait() // join barrier: res is valid after this line

	return nil
}
