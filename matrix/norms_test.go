package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestNorm_Orders(t *testing.T) {
	x := []float64{3, -4}

	n1, err := matrix.Norm(x, 1)
	require.NoError(t, err)
	require.InDelta(t, 7.0, n1, 1e-12)

	n2, err := matrix.Norm(x, 2)
	require.NoError(t, err)
	require.InDelta(t, 5.0, n2, 1e-12)

	n3, err := matrix.Norm(x, 3)
	require.NoError(t, err)
	require.InDelta(t, math.Pow(27+64, 1.0/3.0), n3, 1e-12)
}

func TestNorm_BadOrder(t *testing.T) {
	for _, p := range []float64{0, 0.5, -1, math.NaN()} {
		_, err := matrix.Norm([]float64{1, 2}, p)
		require.ErrorIs(t, err, matrix.ErrBadNormOrder)
	}
	_, err := matrix.Norm(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestL2Norm(t *testing.T) {
	n, err := matrix.L2Norm([]float64{1, 2, 2})
	require.NoError(t, err)
	require.InDelta(t, 3.0, n, 1e-12)

	// Empty vector has norm zero.
	n, err = matrix.L2Norm([]float64{})
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestKahanAccumulator_CompensatesCancellation(t *testing.T) {
	// 1 + 1e-16 added 1e4 times loses every tiny term under naive
	// summation; Kahan keeps them.
	var acc matrix.KahanAccumulator
	naive := 0.0
	acc.Add(1)
	naive += 1
	for i := 0; i < 10000; i++ {
		acc.Add(1e-16)
		naive += 1e-16
	}
	want := 1 + 1e-12

	require.Equal(t, 1.0, naive) // naive sum drops every term
	require.InEpsilon(t, want, acc.Sum(), 1e-12)

	acc.Reset()
	require.Zero(t, acc.Sum())
}

func TestDot(t *testing.T) {
	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)
	require.InDelta(t, 12.0, d, 1e-12)

	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Dot(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNormalize(t *testing.T) {
	u, err := matrix.Normalize([]float64{3, 4})
	require.NoError(t, err)
	require.InDelta(t, 0.6, u[0], 1e-12)
	require.InDelta(t, 0.8, u[1], 1e-12)

	// Zero vector: division by zero propagates NaN, no error.
	u, err = matrix.Normalize([]float64{0, 0})
	require.NoError(t, err)
	require.True(t, math.IsNaN(u[0]))
}

func TestFlattenVec(t *testing.T) {
	row := mustDense(t, [][]float64{{1, 2, 3}})
	x, err := matrix.FlattenVec(row)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, x)

	col := mustDense(t, [][]float64{{1}, {2}, {3}})
	x, err = matrix.FlattenVec(col)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, x)

	sq := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	_, err = matrix.FlattenVec(sq)
	require.ErrorIs(t, err, matrix.ErrNotOneDimensional)
}
