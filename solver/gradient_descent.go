// SPDX-License-Identifier: MIT
// Package solver - steepest-descent iterative solver for A·x = b.

package solver

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/linalg/matrix"
)

const opGradientDescent = "solver.GradientDescent"

// Gradient-descent defaults; zero-valued GDOptions fields fall back to these.
const (
	// DefaultGDMaxIter caps the descent loop.
	DefaultGDMaxIter = 1000

	// DefaultGDTol is the absolute elementwise convergence tolerance between
	// successive estimates.
	DefaultGDTol = 1e-8

	// DefaultGDSeed seeds the start-vector source when none is injected,
	// keeping runs reproducible.
	DefaultGDSeed = 1
)

// GDOptions configures GradientDescent.
//
// Fields:
//   - MaxIter — maximum number of descent steps (≤0 ⇒ DefaultGDMaxIter).
//   - Tol     — absolute elementwise tolerance on successive estimates
//     (≤0 ⇒ DefaultGDTol).
//   - Rand    — random source for the initial estimate (nil ⇒ fixed
//     DefaultGDSeed source, so results are reproducible by default).
//
// Example:
//
//	x, err := solver.GradientDescent(a, b, &solver.GDOptions{MaxIter: 500})
type GDOptions struct {
	MaxIter int
	Tol     float64
	Rand    *rand.Rand
}

// GradientDescent solves A·x = b by steepest descent: an alternate,
// factorization-free solver for symmetric positive-definite systems.
//
// Implementation:
//   - Stage 1: validate A square, b conformable; draw a random start x.
//   - Stage 2: iterate d = b − A·x (the residual, which is also the negative
//     gradient of ½xᵀAx − bᵀx), step size α = dᵀd / dᵀ·A·d (exact line
//     minimum along d), x ← x + α·d; stop when successive estimates agree
//     elementwise within Tol, or after MaxIter steps.
//
// Behavior highlights:
//   - Best-effort contract: exhausting MaxIter is not an error — the last
//     estimate is returned (convergence rate degrades with the condition
//     number of A).
//   - Positive-definiteness is a precondition, not checked: an indefinite A
//     can make dᵀAd vanish or go negative, propagating Inf/NaN permissively.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch on shape violations.
//
// Complexity: Time O(MaxIter·n^2), Space O(n).
func GradientDescent(a matrix.Matrix, b []float64, opts *GDOptions) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, solverErrorf(opGradientDescent, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, solverErrorf(opGradientDescent, err)
	}

	// Resolve options to their documented defaults.
	maxIter, tol := DefaultGDMaxIter, DefaultGDTol
	var rng *rand.Rand
	if opts != nil {
		if opts.MaxIter > 0 {
			maxIter = opts.MaxIter
		}
		if opts.Tol > 0 {
			tol = opts.Tol
		}
		rng = opts.Rand
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(DefaultGDSeed))
	}

	x, err := matrix.RandomVec(rng, n)
	if err != nil {
		return nil, solverErrorf(opGradientDescent, err)
	}

	d := make([]float64, n)
	var (
		iter, i          int
		dd, dad, alpha   float64
		delta, stepDelta float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// Residual d = b − A·x.
		ax, err := matrix.MatVec(a, x)
		if err != nil {
			return nil, solverErrorf(opGradientDescent, err)
		}
		for i = 0; i < n; i++ {
			d[i] = b[i] - ax[i]
		}

		// Optimal step α = dᵀd / dᵀ·A·d.
		ad, err := matrix.MatVec(a, d)
		if err != nil {
			return nil, solverErrorf(opGradientDescent, err)
		}
		dd, dad = matrix.ZeroSum, matrix.ZeroSum
		for i = 0; i < n; i++ {
			dd += d[i] * d[i]
			dad += d[i] * ad[i]
		}
		alpha = dd / dad

		// Advance and measure the largest elementwise movement.
		delta = 0
		for i = 0; i < n; i++ {
			stepDelta = alpha * d[i]
			x[i] += stepDelta
			if math.Abs(stepDelta) > delta {
				delta = math.Abs(stepDelta)
			}
		}
		if delta < tol {
			break
		}
	}

	return x, nil
}
