// SPDX-License-Identifier: MIT
// Package matrix - closeness predicates: symmetry and the Hermitian check.
// Complex support in this repository is deliberately limited to the
// conjugate-transpose utilities below; everything else operates on float64.

package matrix

import "math"

// DefaultEpsilon defines the non-negative tolerance used by the closeness
// predicates when the caller has no better problem-specific value.
const DefaultEpsilon = 1e-8

// IsSymmetric reports whether A equals its transpose element-wise within
// DefaultEpsilon. Non-square and nil matrices are simply not symmetric; this
// is a predicate, not a validator, so it never returns an error.
//
// Complexity: Time O(n^2), Space O(1).
//
// AI-Hints:
//   - Algorithms that REQUIRE symmetry should call ValidateSymmetric instead
//     and surface ErrAsymmetry; use IsSymmetric only for branching (e.g. the
//     tridiagonal shortcut in Hessenberg reduction).
func IsSymmetric(m Matrix) bool {
	if m == nil || m.Rows() != m.Cols() {
		return false
	}
	n := m.Rows()
	var i, j int
	var aij, aji float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // upper triangle only
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > DefaultEpsilon {
				return false
			}
		}
	}

	return true
}

// Herm returns the conjugate transpose of a complex matrix held as paired
// real and imaginary parts: (re + i·im)ᴴ = reᵀ - i·imᵀ.
//
// Errors:
//   - ErrNilMatrix on nil parts, ErrDimensionMismatch when the parts disagree
//     in shape (propagated from Transpose/Scale).
//
// Complexity: Time O(r*c), Space O(r*c).
func Herm(re, im Matrix) (Matrix, Matrix, error) {
	if err := ValidateBinarySameShape(re, im); err != nil {
		return nil, nil, matrixErrorf("Herm", err)
	}
	reT, err := Transpose(re)
	if err != nil {
		return nil, nil, matrixErrorf("Herm", err)
	}
	imT, err := Transpose(im)
	if err != nil {
		return nil, nil, matrixErrorf("Herm", err)
	}
	// Negate the transposed imaginary part: conj(a+bi) = a - bi.
	imConjT, err := Scale(imT, -1)
	if err != nil {
		return nil, nil, matrixErrorf("Herm", err)
	}

	return reT, imConjT, nil
}

// IsHermitian reports whether the complex matrix (re + i·im) equals its
// conjugate transpose within DefaultEpsilon: re symmetric and im
// antisymmetric (which forces a zero imaginary diagonal).
//
// Complexity: Time O(n^2), Space O(1).
func IsHermitian(re, im Matrix) bool {
	if re == nil || im == nil {
		return false
	}
	if re.Rows() != re.Cols() || im.Rows() != im.Cols() || re.Rows() != im.Rows() {
		return false
	}
	n := re.Rows()
	var i, j int
	var a, b float64
	for i = 0; i < n; i++ {
		// Diagonal of the imaginary part must vanish.
		a, _ = im.At(i, i)
		if math.Abs(a) > DefaultEpsilon {
			return false
		}
		for j = i + 1; j < n; j++ {
			a, _ = re.At(i, j)
			b, _ = re.At(j, i)
			if math.Abs(a-b) > DefaultEpsilon { // real part symmetric
				return false
			}
			a, _ = im.At(i, j)
			b, _ = im.At(j, i)
			if math.Abs(a+b) > DefaultEpsilon { // imaginary part antisymmetric
				return false
			}
		}
	}

	return true
}
