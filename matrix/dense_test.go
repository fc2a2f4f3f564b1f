package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_ShapeAndZeroFill(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 3}, {3, 0}, {-1, 2}, {2, -5}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	// Ragged input is rejected.
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Empty input is rejected.
	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 42))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 42.0, v)

	for _, tc := range []struct{ i, j int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(tc.i, tc.j)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(tc.i, tc.j, 0), matrix.ErrOutOfRange)
	}

	// NaN and Inf are stored verbatim; degeneracy propagates, never errors.
	require.NoError(t, m.Set(0, 0, math.NaN()))
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

func TestDense_ColSetCol(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	require.NoError(t, err)

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, col)

	require.NoError(t, m.SetCol(0, []float64{9, 8, 7}))
	col, err = m.Col(0)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 8, 7}, col)

	_, err = m.Col(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetCol(0, []float64{1, 2}), matrix.ErrDimensionMismatch)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 99))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // original untouched
}

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Zero(t, v)
			}
		}
	}

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRandomNormal_Deterministic(t *testing.T) {
	a, err := matrix.RandomNormal(rand.New(rand.NewSource(7)), 4, 3)
	require.NoError(t, err)
	b, err := matrix.RandomNormal(rand.New(rand.NewSource(7)), 4, 3)
	require.NoError(t, err)
	require.Equal(t, a.Data(), b.Data()) // same seed, same draws

	_, err = matrix.RandomNormal(nil, 2, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRandomVec(t *testing.T) {
	x, err := matrix.RandomVec(rand.New(rand.NewSource(1)), 5)
	require.NoError(t, err)
	require.Len(t, x, 5)

	_, err = matrix.RandomVec(rand.New(rand.NewSource(1)), 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.RandomVec(nil, 5)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
