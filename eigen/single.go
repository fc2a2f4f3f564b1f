// SPDX-License-Identifier: MIT
// Package eigen - single-eigenpair algorithms: power iteration, inverse
// iteration and Rayleigh-quotient iteration, plus the shared Rayleigh
// quotient primitive. All of them require symmetric input and return a
// unit-norm eigenvector.

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/lu"
	"github.com/katalvlaran/linalg/matrix"
)

// Operation tags for unified error wrapping.
const (
	opRayleighQuotient = "eigen.RayleighQuotient"
	opPowerIteration   = "eigen.PowerIteration"
	opInverseIteration = "eigen.InverseIteration"
	opRQIteration      = "eigen.RayleighQuotientIteration"
)

// eigenErrorf wraps err with an operation tag, preserving the sentinel via %w.
func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// unitNormTol bounds |xᵀx − 1| under which the Rayleigh quotient skips its
// denominator (both forms agree to numerical tolerance on unit vectors).
const unitNormTol = 1e-12

// RayleighQuotient computes xᵀAx / xᵀx — the best scalar eigenvalue
// estimate for an approximate eigenvector x. When x is already unit-norm
// (|xᵀx − 1| ≤ 1e-12) the division is skipped.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch on shape violations.
//
// Complexity: Time O(n^2), Space O(n).
func RayleighQuotient(a matrix.Matrix, x []float64) (float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, eigenErrorf(opRayleighQuotient, err)
	}
	if err := matrix.ValidateVecLen(x, a.Rows()); err != nil {
		return 0, eigenErrorf(opRayleighQuotient, err)
	}

	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, eigenErrorf(opRayleighQuotient, err)
	}
	num, err := matrix.Dot(x, ax)
	if err != nil {
		return 0, eigenErrorf(opRayleighQuotient, err)
	}
	den, err := matrix.Dot(x, x)
	if err != nil {
		return 0, eigenErrorf(opRayleighQuotient, err)
	}
	if math.Abs(den-1) <= unitNormTol {
		return num, nil // unit vector: both forms agree, skip the division
	}

	return num / den, nil
}

// PowerIteration finds the eigenpair of largest-magnitude eigenvalue of a
// symmetric matrix.
//
// Implementation:
//   - Stage 1: symmetry gate; draw a random start vector from the option
//     source.
//   - Stage 2: repeat v ← A·v, renormalize to unit L2 norm, for the FULL
//     iteration budget — this variant has no early-exit convergence check by
//     contract.
//   - Stage 3: the eigenvalue estimate is the Rayleigh quotient of the final
//     vector.
//
// Behavior highlights:
//   - Converges to the dominant eigenpair provided that eigenvalue is
//     separated from the rest and the random start has a nonzero component
//     along it (true almost surely).
//   - Deterministic by default (fixed-seed source); inject WithRand for
//     randomized restarts.
//
// Returns:
//   - (eigenvalue, eigenvector); the eigenvector has unit L2 norm.
//
// Errors:
//   - matrix.ErrNilMatrix/ErrDimensionMismatch/ErrAsymmetry from validation.
//
// Complexity: Time O(MaxIter·n^2), Space O(n).
func PowerIteration(a matrix.Matrix, opts ...Option) (float64, []float64, error) {
	if err := matrix.ValidateSymmetric(a, DefaultSymmetryTol); err != nil {
		return 0, nil, eigenErrorf(opPowerIteration, err)
	}
	o := gatherOptions(opts...)

	v, err := matrix.RandomVec(o.rng, a.Rows())
	if err != nil {
		return 0, nil, eigenErrorf(opPowerIteration, err)
	}
	for iter := 0; iter < o.maxIter; iter++ {
		if v, err = matrix.MatVec(a, v); err != nil {
			return 0, nil, eigenErrorf(opPowerIteration, err)
		}
		if v, err = matrix.Normalize(v); err != nil {
			return 0, nil, eigenErrorf(opPowerIteration, err)
		}
	}

	e, err := RayleighQuotient(a, v)
	if err != nil {
		return 0, nil, eigenErrorf(opPowerIteration, err)
	}

	return e, v, nil
}

// InverseIteration finds the eigenpair of smallest-magnitude eigenvalue of a
// symmetric invertible matrix.
//
// Implementation:
//   - Stage 1: symmetry gate; factor A once via partial-pivoted LU.
//   - Stage 2: repeat solve A·v′ = v, renormalize, for the full budget (the
//     iteration is power iteration on A⁻¹, whose dominant eigenvalue is the
//     reciprocal of A's smallest).
//   - Stage 3: Rayleigh quotient of the final vector.
//
// Errors:
//   - matrix.ErrAsymmetry and shape sentinels from validation.
//   - matrix.ErrSingular when A is exactly singular (the factorization hits
//     a zero pivot); a nearly singular A degrades silently instead.
//
// Complexity: Time O(n^3 + MaxIter·n^2), Space O(n^2).
func InverseIteration(a matrix.Matrix, opts ...Option) (float64, []float64, error) {
	if err := matrix.ValidateSymmetric(a, DefaultSymmetryTol); err != nil {
		return 0, nil, eigenErrorf(opInverseIteration, err)
	}
	o := gatherOptions(opts...)

	f, err := lu.New(a, lu.PivotPartial)
	if err != nil {
		return 0, nil, eigenErrorf(opInverseIteration, err)
	}
	v, err := matrix.RandomVec(o.rng, a.Rows())
	if err != nil {
		return 0, nil, eigenErrorf(opInverseIteration, err)
	}
	for iter := 0; iter < o.maxIter; iter++ {
		if v, err = f.SolveVec(v); err != nil {
			return 0, nil, eigenErrorf(opInverseIteration, err)
		}
		if v, err = matrix.Normalize(v); err != nil {
			return 0, nil, eigenErrorf(opInverseIteration, err)
		}
	}

	e, err := RayleighQuotient(a, v)
	if err != nil {
		return 0, nil, eigenErrorf(opInverseIteration, err)
	}

	return e, v, nil
}

// RayleighQuotientIteration finds the eigenpair whose eigenvalue is closest
// to the initial guess mu, with locally cubic convergence.
//
// Implementation:
//   - Stage 1: symmetry gate; draw a random start vector.
//   - Stage 2: repeat solve (A − μI)·v′ = v, renormalize, then update μ to
//     the Rayleigh quotient of the new vector. The shift changes every step,
//     so each iteration refactors the shifted matrix.
//
// Errors:
//   - matrix.ErrAsymmetry and shape sentinels from validation.
//   - matrix.ErrSingular when the shift lands exactly on an eigenvalue and
//     the shifted factorization meets a zero pivot; a nearly exact shift
//     instead produces a huge, well-directed step (which is precisely why
//     the method converges so fast).
//
// Complexity: Time O(MaxIter·n^3), Space O(n^2).
func RayleighQuotientIteration(a matrix.Matrix, mu float64, opts ...Option) (float64, []float64, error) {
	if err := matrix.ValidateSymmetric(a, DefaultSymmetryTol); err != nil {
		return 0, nil, eigenErrorf(opRQIteration, err)
	}
	o := gatherOptions(opts...)

	n := a.Rows()
	v, err := matrix.RandomVec(o.rng, n)
	if err != nil {
		return 0, nil, eigenErrorf(opRQIteration, err)
	}
	for iter := 0; iter < o.maxIter; iter++ {
		shifted, err := shiftDiag(a, -mu)
		if err != nil {
			return 0, nil, eigenErrorf(opRQIteration, err)
		}
		f, err := lu.New(shifted, lu.PivotPartial)
		if err != nil {
			return 0, nil, eigenErrorf(opRQIteration, err)
		}
		if v, err = f.SolveVec(v); err != nil {
			return 0, nil, eigenErrorf(opRQIteration, err)
		}
		if v, err = matrix.Normalize(v); err != nil {
			return 0, nil, eigenErrorf(opRQIteration, err)
		}
		if mu, err = RayleighQuotient(a, v); err != nil {
			return 0, nil, eigenErrorf(opRQIteration, err)
		}
	}

	return mu, v, nil
}

// shiftDiag returns a fresh copy of the square matrix a with shift added to
// every diagonal entry: A + shift·I.
// Complexity: Time O(n^2) for the copy, Space O(n^2).
func shiftDiag(a matrix.Matrix, shift float64) (matrix.Matrix, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, err
	}
	cp := a.Clone()
	n := cp.Rows()
	var v float64
	var err error
	for i := 0; i < n; i++ {
		if v, err = cp.At(i, i); err != nil {
			return nil, err
		}
		if err = cp.Set(i, i, v+shift); err != nil {
			return nil, err
		}
	}

	return cp, nil
}
