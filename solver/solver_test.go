package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/solver"
)

// mustDense builds a fixture matrix or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestSolve_MatchesReference(t *testing.T) {
	a := mustDense(t, [][]float64{
		{3, 2, -1},
		{2, -2, 4},
		{-1, 0.5, -1},
	})
	b := []float64{1, -2, 0}

	x, err := solver.Solve(a, b)
	require.NoError(t, err)

	var ref mat.LU
	ref.Factorize(mat.NewDense(3, 3, []float64{3, 2, -1, 2, -2, 4, -1, 0.5, -1}))
	var want mat.VecDense
	require.NoError(t, ref.SolveVecTo(&want, false, mat.NewVecDense(3, []float64{1, -2, 0})))

	for i := 0; i < 3; i++ {
		require.InDelta(t, want.AtVec(i), x[i], 1e-10, "x[%d]", i)
	}
}

func TestSolve_ResidualVanishes(t *testing.T) {
	a := mustDense(t, [][]float64{
		{10, -7, 0},
		{-3, 2, 6},
		{5, -1, 5},
	})
	b := []float64{7, 4, 6}

	x, err := solver.Solve(a, b)
	require.NoError(t, err)

	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	for i := range b {
		require.InDelta(t, b[i], ax[i], 1e-10, "residual component %d", i)
	}
}

func TestSolve_Errors(t *testing.T) {
	_, err := solver.Solve(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	singular := mustDense(t, [][]float64{{1, 2}, {2, 4}})
	_, err = solver.Solve(singular, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)

	sq := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	_, err = solver.Solve(sq, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolveMatrix(t *testing.T) {
	a := mustDense(t, [][]float64{
		{2, 0},
		{0, 4},
	})
	b := mustDense(t, [][]float64{
		{2, 4},
		{8, 16},
	})

	x, err := solver.SolveMatrix(a, b)
	require.NoError(t, err)

	// Diagonal system: each column solves independently.
	want := [][]float64{{1, 2}, {2, 4}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := x.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, 1e-12)
		}
	}

	_, err = solver.SolveMatrix(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestGradientDescent_SPD(t *testing.T) {
	// Well-conditioned symmetric positive-definite system.
	a := mustDense(t, [][]float64{
		{4, 1},
		{1, 3},
	})
	b := []float64{1, 2}

	x, err := solver.GradientDescent(a, b, nil)
	require.NoError(t, err)

	// Exact solution: x = (1/11, 7/11).
	require.InDelta(t, 1.0/11.0, x[0], 1e-6)
	require.InDelta(t, 7.0/11.0, x[1], 1e-6)
}

func TestGradientDescent_AgreesWithDirectSolve(t *testing.T) {
	a := mustDense(t, [][]float64{
		{5, 1, 0},
		{1, 4, 1},
		{0, 1, 3},
	})
	b := []float64{6, 6, 4}

	direct, err := solver.Solve(a, b)
	require.NoError(t, err)
	gd, err := solver.GradientDescent(a, b, &solver.GDOptions{
		MaxIter: 5000,
		Rand:    rand.New(rand.NewSource(3)),
	})
	require.NoError(t, err)

	for i := range direct {
		require.InDelta(t, direct[i], gd[i], 1e-6, "x[%d]", i)
	}
}

func TestGradientDescent_DeterministicByDefault(t *testing.T) {
	a := mustDense(t, [][]float64{{4, 1}, {1, 3}})
	b := []float64{1, 2}

	x1, err := solver.GradientDescent(a, b, nil)
	require.NoError(t, err)
	x2, err := solver.GradientDescent(a, b, nil)
	require.NoError(t, err)
	require.Equal(t, x1, x2) // fixed default seed

	_, err = solver.GradientDescent(a, []float64{1}, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = solver.GradientDescent(nil, b, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
