// SPDX-License-Identifier: MIT
// Package matrix - compensated-summation norms and vector primitives.
//
// Purpose:
//   - Kahan (compensated) summation so p-norms over many small terms match the
//     mathematically exact sum to near machine precision.
//   - L2 norm, general p-norm, dot product and unit-normalization used by every
//     iterative eigensolver in this repository.
//
// Determinism:
//   - Fixed left-to-right accumulation order everywhere; identical inputs give
//     identical floating-point outputs.
package matrix

import (
	"fmt"
	"math"
)

// Operation tags for this file's facades.
const (
	opNorm       = "Norm"
	opL2Norm     = "L2Norm"
	opDot        = "Dot"
	opNormalize  = "Normalize"
	opFlattenVec = "FlattenVec"
)

// KahanAccumulator implements compensated (Kahan) summation.
// Each Add tracks a running compensation term c so that the final Sum matches
// the exact mathematical sum to near machine precision regardless of term
// count. The zero value is ready to use.
//
// Complexity: Add O(1), Sum O(1).
//
// AI-Hints:
//   - Use for long accumulations of small terms (p-norms, residuals); plain
//     `+=` loses low-order bits once the running sum dwarfs the addend.
type KahanAccumulator struct {
	sum float64 // running compensated sum
	c   float64 // running compensation for lost low-order bits
}

// Add folds v into the compensated sum.
func (k *KahanAccumulator) Add(v float64) {
	y := v - k.c         // subtract the compensation carried from the last step
	t := k.sum + y       // big + small: low-order digits of y are lost here
	k.c = (t - k.sum) - y // recover exactly what was lost
	k.sum = t
}

// Sum returns the current compensated sum.
func (k *KahanAccumulator) Sum() float64 { return k.sum }

// Reset clears the accumulator to its zero state.
func (k *KahanAccumulator) Reset() { k.sum, k.c = 0, 0 }

// Norm returns the p-norm of x: (Σ |x_i|^p)^(1/p), accumulated with Kahan
// summation.
//
// Inputs:
//   - x: non-nil vector.
//   - p: norm order, must be ≥ 1 (p=1 Manhattan, p=2 Euclidean, ...).
//
// Errors:
//   - ErrNilMatrix on a nil vector.
//   - ErrBadNormOrder when p < 1 or p is NaN.
//
// Complexity: Time O(n), Space O(1).
func Norm(x []float64, p float64) (float64, error) {
	if x == nil {
		return 0, matrixErrorf(opNorm, ErrNilMatrix)
	}
	if math.IsNaN(p) || p < 1 {
		return 0, matrixErrorf(opNorm, ErrBadNormOrder)
	}

	var acc KahanAccumulator
	for i := 0; i < len(x); i++ { // fixed left-to-right order
		acc.Add(math.Pow(math.Abs(x[i]), p))
	}

	return math.Pow(acc.Sum(), 1/p), nil
}

// L2Norm returns sqrt(xᵀx), the Euclidean norm of x.
// This is the renormalization primitive of every iterative eigensolver, so it
// avoids the Pow calls of the general Norm.
//
// Errors:
//   - ErrNilMatrix on a nil vector.
//
// Complexity: Time O(n), Space O(1).
func L2Norm(x []float64) (float64, error) {
	if x == nil {
		return 0, matrixErrorf(opL2Norm, ErrNilMatrix)
	}
	var acc KahanAccumulator
	for i := 0; i < len(x); i++ {
		acc.Add(x[i] * x[i])
	}

	return math.Sqrt(acc.Sum()), nil
}

// Dot returns xᵀy for equal-length vectors, Kahan-accumulated.
//
// Errors:
//   - ErrNilMatrix on a nil operand.
//   - ErrDimensionMismatch on a length mismatch.
//
// Complexity: Time O(n), Space O(1).
func Dot(x, y []float64) (float64, error) {
	if x == nil || y == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if len(x) != len(y) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	var acc KahanAccumulator
	for i := 0; i < len(x); i++ {
		acc.Add(x[i] * y[i])
	}

	return acc.Sum(), nil
}

// Normalize returns a fresh copy of x scaled to unit L2 norm.
// A zero vector divides by zero and propagates ±Inf/NaN permissively, per the
// package's numeric-degeneracy contract.
//
// Errors:
//   - ErrNilMatrix on a nil vector.
//
// Complexity: Time O(n), Space O(n).
func Normalize(x []float64) ([]float64, error) {
	nrm, err := L2Norm(x)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] / nrm
	}

	return out, nil
}

// FlattenVec views a single-row or single-column matrix as a plain vector.
// Any other shape is rejected: the norm routines are defined on
// one-dimensional input only.
//
// Errors:
//   - ErrNilMatrix on nil input.
//   - ErrNotOneDimensional when m has both Rows > 1 and Cols > 1.
//
// Complexity: Time O(n), Space O(n) for the copied vector.
func FlattenVec(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFlattenVec, err)
	}
	r, c := m.Rows(), m.Cols()
	if r > 1 && c > 1 {
		return nil, matrixErrorf(opFlattenVec, ErrNotOneDimensional)
	}
	out := make([]float64, r*c)
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opFlattenVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[i*c+j] = v
		}
	}

	return out, nil
}
