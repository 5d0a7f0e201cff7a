package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
)

// TestPartitionsCoverage sweeps totals and worker counts and checks that the
// partitions are contiguous, disjoint, cover [0,total) and that all but the
// last have size floor(total/workers).
func TestPartitionsCoverage(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for workers := 1; workers <= 12; workers++ {
			parts, err := matrix.Partitions(total, workers)
			require.NoError(t, err)
			require.Len(t, parts, workers)

			incr := total / workers
			next := 0
			for w, p := range parts {
				require.Equal(t, next, p.Low, "total=%d workers=%d w=%d", total, workers, w)
				require.GreaterOrEqual(t, p.Len(), 0)
				if w < workers-1 {
					require.Equal(t, incr, p.Len(), "total=%d workers=%d w=%d", total, workers, w)
				} else {
					require.Equal(t, incr+total%workers, p.Len(), "last absorbs remainder")
				}
				next = p.High
			}
			require.Equal(t, total, next)
		}
	}
}

func TestPartitionsExamples(t *testing.T) {
	parts, err := matrix.Partitions(10, 3)
	require.NoError(t, err)
	require.Equal(t, []matrix.Partition{{Low: 0, High: 3}, {Low: 3, High: 6}, {Low: 6, High: 10}}, parts)

	parts, err = matrix.Partitions(4, 5)
	require.NoError(t, err)
	require.Equal(t, []matrix.Partition{{}, {}, {}, {}, {Low: 0, High: 4}}, parts)
}

func TestPartitionsErrors(t *testing.T) {
	_, err := matrix.Partitions(10, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidWorkerCount)

	_, err = matrix.Partitions(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
