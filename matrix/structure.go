// SPDX-License-Identifier: MIT
// Package matrix - structural helpers: triangular extraction, diagonal
// access, and standard basis construction. These are the assembly bricks the
// decomposition packages use to build and verify their factors.

package matrix

import "fmt"

// Operation tags for this file's facades.
const (
	opUpperDiag = "UpperDiag"
	opLowerDiag = "LowerDiag"
	opUnitDiag  = "UnitDiag"
	opDiagonal  = "Diagonal"
	opBasisVec  = "BasisVec"
	opBasisArr  = "BasisArr"
)

// UpperDiag extracts the upper-triangular part of a square matrix into a
// zero-initialized matrix of the same shape. With diag=false the diagonal is
// excluded (strictly upper); with diag=true it is included.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity: Time O(n^2), Space O(n^2).
func UpperDiag(m Matrix, diag bool) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opUpperDiag, err)
	}
	n := m.Rows()
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opUpperDiag, err)
	}
	var i, j, lb int
	var v float64
	for i = 0; i < n; i++ {
		lb = i + 1 // strictly upper by default
		if diag {
			lb = i // include the diagonal
		}
		for j = lb; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opUpperDiag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*n+j] = v
		}
	}

	return res, nil
}

// LowerDiag extracts the lower-triangular part of a square matrix into a
// zero-initialized matrix of the same shape. With diag=false the diagonal is
// excluded (strictly lower); with diag=true it is included.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity: Time O(n^2), Space O(n^2).
func LowerDiag(m Matrix, diag bool) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLowerDiag, err)
	}
	n := m.Rows()
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLowerDiag, err)
	}
	var i, j, ub int
	var v float64
	for i = 0; i < n; i++ {
		ub = i // strictly lower by default
		if diag {
			ub = i + 1 // include the diagonal
		}
		for j = 0; j < ub; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opLowerDiag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*n+j] = v
		}
	}

	return res, nil
}

// UnitDiag returns a copy of the square matrix m with its diagonal forced to
// 1. Used when assembling the unit-lower-triangular L factor; the input is
// never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity: Time O(n^2), Space O(n^2).
func UnitDiag(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opUnitDiag, err)
	}
	cp := m.Clone()
	n := cp.Rows()
	for i := 0; i < n; i++ {
		if err := cp.Set(i, i, 1.0); err != nil {
			return nil, matrixErrorf(opUnitDiag, fmt.Errorf("Set(%d,%d): %w", i, i, err))
		}
	}

	return cp, nil
}

// Diagonal extracts the main diagonal of a square matrix into a vector.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity: Time O(n), Space O(n).
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	n := m.Rows()
	out := make([]float64, n)
	var v float64
	var err error
	for i := 0; i < n; i++ {
		v, err = m.At(i, i)
		if err != nil {
			return nil, matrixErrorf(opDiagonal, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		out[i] = v
	}

	return out, nil
}

// BasisVec creates the k'th standard basis column vector in R^n as an n×1
// matrix.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//   - ErrOutOfBasisRange when k < 0 or k >= n.
//
// Complexity: Time O(n), Space O(n).
func BasisVec(k, n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opBasisVec, ErrInvalidDimensions)
	}
	if k < 0 || k >= n {
		return nil, matrixErrorf(opBasisVec, ErrOutOfBasisRange)
	}
	b, err := NewDense(n, 1)
	if err != nil {
		return nil, matrixErrorf(opBasisVec, err)
	}
	b.data[k] = 1.0

	return b, nil
}

// BasisArr stacks the standard basis vectors e_k for each k in ks as the rows
// of a len(ks)×n matrix: row i is e_{ks[i]}.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0 or ks is empty.
//   - ErrOutOfBasisRange when any k < 0 or k >= n.
//
// Complexity: Time O(len(ks)*n), Space O(len(ks)*n).
func BasisArr(ks []int, n int) (*Dense, error) {
	if n <= 0 || len(ks) == 0 {
		return nil, matrixErrorf(opBasisArr, ErrInvalidDimensions)
	}
	b, err := NewDense(len(ks), n)
	if err != nil {
		return nil, matrixErrorf(opBasisArr, err)
	}
	for i, k := range ks {
		if k < 0 || k >= n {
			return nil, matrixErrorf(opBasisArr, fmt.Errorf("index %d: %w", i, ErrOutOfBasisRange))
		}
		b.data[i*n+k] = 1.0
	}

	return b, nil
}
