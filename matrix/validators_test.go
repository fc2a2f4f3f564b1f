package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustDense(t, [][]float64{{1}})))
}

func TestValidateSameShape(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})
	b := mustDense(t, [][]float64{{3, 4}})
	c := mustDense(t, [][]float64{{1}, {2}})

	require.NoError(t, matrix.ValidateSameShape(a, b))
	require.ErrorIs(t, matrix.ValidateSameShape(a, c), matrix.ErrDimensionMismatch)
}

func TestValidateSquareNonNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	rect := mustDense(t, [][]float64{{1, 2}})
	require.ErrorIs(t, matrix.ValidateSquareNonNil(rect), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSquareNonNil(mustDense(t, [][]float64{{1, 2}, {3, 4}})))
}

func TestValidateVecLen(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

func TestValidateMulCompatible(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}})   // 1×3
	b := mustDense(t, [][]float64{{1}, {2}})    // 2×1
	c := mustDense(t, [][]float64{{1}, {2}, {3}}) // 3×1

	require.NoError(t, matrix.ValidateMulCompatible(a, c))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, b), matrix.ErrDimensionMismatch)
}

func TestValidateSymmetric(t *testing.T) {
	sym := mustDense(t, [][]float64{{2, 1}, {1, 2}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym := mustDense(t, [][]float64{{2, 1}, {0, 2}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-8), matrix.ErrAsymmetry)

	// Tolerance absorbs small violations; negative tol is normalized.
	near := mustDense(t, [][]float64{{2, 1 + 1e-10}, {1, 2}})
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-8))
	require.NoError(t, matrix.ValidateSymmetric(near, -1e-8))

	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	rect := mustDense(t, [][]float64{{1, 2, 3}})
	require.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrDimensionMismatch)
}

func TestIsSymmetric(t *testing.T) {
	require.True(t, matrix.IsSymmetric(mustDense(t, [][]float64{{2, 1}, {1, 2}})))
	require.False(t, matrix.IsSymmetric(mustDense(t, [][]float64{{2, 1}, {0, 2}})))
	require.False(t, matrix.IsSymmetric(mustDense(t, [][]float64{{1, 2, 3}}))) // non-square
	require.False(t, matrix.IsSymmetric(nil))
	require.True(t, matrix.IsSymmetric(mustDense(t, [][]float64{{5}}))) // 1×1 trivially
}

func TestHerm(t *testing.T) {
	re := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	im := mustDense(t, [][]float64{{0, 5}, {-5, 0}})

	reH, imH, err := matrix.Herm(re, im)
	require.NoError(t, err)
	requireMatrixEqual(t, [][]float64{{1, 3}, {2, 4}}, reH, 0)
	requireMatrixEqual(t, [][]float64{{0, 5}, {-5, 0}}, imH, 0)

	_, _, err = matrix.Herm(re, mustDense(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIsHermitian(t *testing.T) {
	re := mustDense(t, [][]float64{{1, 2}, {2, 4}})
	im := mustDense(t, [][]float64{{0, 5}, {-5, 0}})
	require.True(t, matrix.IsHermitian(re, im))

	// Non-zero imaginary diagonal breaks Hermitian-ness.
	imBad := mustDense(t, [][]float64{{1, 5}, {-5, 0}})
	require.False(t, matrix.IsHermitian(re, imBad))

	// Imaginary part must be antisymmetric.
	imSym := mustDense(t, [][]float64{{0, 5}, {5, 0}})
	require.False(t, matrix.IsHermitian(re, imSym))

	require.False(t, matrix.IsHermitian(nil, im))
}
