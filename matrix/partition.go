// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Partition is a half-open range [Low, High) over the flattened row-major
// index space of a result matrix.
type Partition struct {
	Low  int
	High int
}

// Len returns the number of cells in the partition.
func (p Partition) Len() int { return p.High - p.Low }

// Partitions splits [0, total) into exactly workers contiguous ranges.
// Every range holds total/workers cells except the last, which also absorbs
// total%workers. When workers > total the leading ranges are empty and the
// last one covers everything.
//
// Errors:
//   - ErrInvalidWorkerCount when workers < 1.
//   - ErrInvalidDimensions when total < 0.
//
// Complexity: O(workers).
func Partitions(total, workers int) ([]Partition, error) {
	if err := ValidateWorkerCount(workers); err != nil {
		return nil, matrixErrorf("Partitions", err)
	}
	if total < 0 {
		return nil, matrixErrorf("Partitions", fmt.Errorf("total %d: %w", total, ErrInvalidDimensions))
	}

	incr := total / workers
	parts := make([]Partition, workers)
	begin := 0
	for w := 0; w < workers-1; w++ {
		parts[w] = Partition{Low: begin, High: begin + incr}
		begin += incr
	}
	parts[workers-1] = Partition{Low: begin, High: total} // remainder goes last

	return parts, nil
}
