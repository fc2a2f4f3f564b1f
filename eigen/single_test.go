package eigen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/eigen"
	"github.com/katalvlaran/linalg/matrix"
)

// mustDense builds a fixture matrix or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

// requireEigenpair asserts A·v ≈ λ·v with a unit-norm v.
func requireEigenpair(t *testing.T, a matrix.Matrix, lambda float64, v []float64, eps float64) {
	t.Helper()
	nrm, err := matrix.L2Norm(v)
	require.NoError(t, err)
	require.InDelta(t, 1.0, nrm, 1e-8, "eigenvector norm")

	av, err := matrix.MatVec(a, v)
	require.NoError(t, err)
	for i := range v {
		require.InDelta(t, lambda*v[i], av[i], eps, "residual component %d", i)
	}
}

func TestRayleighQuotient(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 0}, {0, 5}})

	// Unit basis vector: the quotient is the matching diagonal entry.
	r, err := eigen.RayleighQuotient(a, []float64{0, 1})
	require.NoError(t, err)
	require.InDelta(t, 5.0, r, 1e-12)

	// Unnormalized vector: xᵀAx / xᵀx.
	r, err = eigen.RayleighQuotient(a, []float64{2, 0})
	require.NoError(t, err)
	require.InDelta(t, 2.0, r, 1e-12)

	_, err = eigen.RayleighQuotient(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestPowerIteration_DominantPair(t *testing.T) {
	// Eigenvalues 3 and 1; dominant eigenvector ±(1,1)/√2.
	a := mustDense(t, [][]float64{{2, 1}, {1, 2}})

	lambda, v, err := eigen.PowerIteration(a)
	require.NoError(t, err)
	require.InDelta(t, 3.0, lambda, 1e-8)
	requireEigenpair(t, a, lambda, v, 1e-8)
	require.InDelta(t, math.Abs(v[0]), math.Abs(v[1]), 1e-8)
}

func TestPowerIteration_Deterministic(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {1, 2}})

	_, v1, err := eigen.PowerIteration(a)
	require.NoError(t, err)
	_, v2, err := eigen.PowerIteration(a)
	require.NoError(t, err)
	require.Equal(t, v1, v2) // fixed default seed

	// An injected source with another seed still converges to the same
	// subspace (sign may flip).
	lambda, v3, err := eigen.PowerIteration(a, eigen.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	require.InDelta(t, 3.0, lambda, 1e-8)
	require.InDelta(t, math.Abs(v1[0]), math.Abs(v3[0]), 1e-8)
}

func TestPowerIteration_RejectsAsymmetric(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {0, 1}})
	_, _, err := eigen.PowerIteration(a)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestInverseIteration_SmallestPair(t *testing.T) {
	// Eigenvalues 3 and 1; inverse iteration targets the smallest.
	a := mustDense(t, [][]float64{{2, 1}, {1, 2}})

	lambda, v, err := eigen.InverseIteration(a)
	require.NoError(t, err)
	require.InDelta(t, 1.0, lambda, 1e-8)
	requireEigenpair(t, a, lambda, v, 1e-8)
}

func TestInverseIteration_SingularInput(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 1}, {1, 1}})
	_, _, err := eigen.InverseIteration(a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestRayleighQuotientIteration_ConvergesToNearestPair(t *testing.T) {
	// Eigenvalues 1, 3, 6 (block diag of the 2×2 above and a scalar).
	a := mustDense(t, [][]float64{
		{2, 1, 0},
		{1, 2, 0},
		{0, 0, 6},
	})

	lambda, v, err := eigen.RayleighQuotientIteration(a, 5.5, eigen.WithMaxIter(50))
	require.NoError(t, err)
	require.InDelta(t, 6.0, lambda, 1e-8)
	requireEigenpair(t, a, lambda, v, 1e-6)
}

func TestRayleighQuotientIteration_ExactShiftIsSingular(t *testing.T) {
	// An exact eigenvalue shift on a diagonal matrix zeroes a whole column
	// of A − μI, so the factorization must report singularity.
	a := mustDense(t, [][]float64{{2, 0}, {0, 5}})
	_, _, err := eigen.RayleighQuotientIteration(a, 5.0)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { eigen.WithMaxIter(0) })
	require.Panics(t, func() { eigen.WithTol(0) })
	require.Panics(t, func() { eigen.WithRand(nil) })
	require.Panics(t, func() { eigen.WithObserver(nil) })
}
