package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matbench/matrix"
)

// toGonum converts a Dense into a float64 gonum matrix.
func toGonum(m *matrix.Dense) *mat.Dense {
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	m.Do(func(_, _ int, v matrix.Element) bool {
		data = append(data, float64(v))
		return true
	})

	return mat.NewDense(r, c, data)
}

// TestMulMatchesGonum uses gonum's float64 product as an independent oracle.
// Operands stay within [-99, 99] and k <= 64, so every partial sum is far
// below 2^31 and the float64 product is exact.
func TestMulMatchesGonum(t *testing.T) {
	shapes := [][3]int{{1, 1, 1}, {4, 4, 4}, {9, 33, 5}, {17, 64, 23}}
	for si, sh := range shapes {
		t.Run(fmt.Sprintf("%dx%dx%d", sh[0], sh[1], sh[2]), func(t *testing.T) {
			a := RandDense(t, sh[0], sh[1], matrix.DefaultLow, matrix.DefaultHigh, int64(100+si))
			b := RandDense(t, sh[1], sh[2], matrix.DefaultLow, matrix.DefaultHigh, int64(200+si))

			var want mat.Dense
			want.Mul(toGonum(a), toGonum(b))

			seq, err := matrix.Mul(a, b)
			require.NoError(t, err)
			par, err := matrix.MulParallel(a, b, 4)
			require.NoError(t, err)

			var i, j int
			for i = 0; i < sh[0]; i++ {
				for j = 0; j < sh[2]; j++ {
					require.Equal(t, want.At(i, j), float64(MustAt(t, seq, i, j)), "seq (%d,%d)", i, j)
					require.Equal(t, want.At(i, j), float64(MustAt(t, par, i, j)), "par (%d,%d)", i, j)
				}
			}
		})
	}
}
