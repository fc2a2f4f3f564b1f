// SPDX-License-Identifier: MIT
// Package qr - Householder QR factorization.

package qr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// Operation tags for unified error wrapping.
const (
	opNew       = "qr.New"
	opDecompose = "qr.Decompose"
)

// qrErrorf wraps err with an operation tag, preserving the sentinel via %w.
func qrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// QR factors an m×n matrix (m ≥ n) as A = Q·R with Q orthogonal (m×m,
// QᵀQ = I) and R upper-triangular (m×n), via sequential Householder
// reflections that zero the sub-diagonal entries column by column.
// Construct with New; the input is copied once and never mutated.
type QR struct {
	m, n int
	a    []float64 // private row-major copy, overwritten with R by Decompose

	q, r     *matrix.Dense // cached factors
	factored bool
}

// New captures a private copy of a for factorization.
//
// Errors:
//   - matrix.ErrNilMatrix on nil input.
//   - matrix.ErrDimensionMismatch when rows < cols (the m ≥ n contract).
//
// Complexity: Time O(m*n), Space O(m*n).
func New(a matrix.Matrix) (*QR, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, qrErrorf(opNew, err)
	}
	m, n := a.Rows(), a.Cols()
	if m < n {
		return nil, qrErrorf(opNew, matrix.ErrDimensionMismatch)
	}

	buf := make([]float64, m*n)
	// Fast-path: flat copy from *Dense; fallback reads via At.
	if d, ok := a.(*matrix.Dense); ok {
		copy(buf, d.Data())
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				v, err = a.At(i, j)
				if err != nil {
					return nil, qrErrorf(opNew, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				buf[i*n+j] = v
			}
		}
	}

	return &QR{m: m, n: n, a: buf}, nil
}

// Decompose runs the Householder sweep and returns (Q, R). Idempotent:
// repeated calls return the cached factors.
//
// Implementation:
//   - Stage 1: initialize Q to the m×m identity.
//   - Stage 2: for each column k, build the reflector v from the sub-column
//     A[k:, k] with α = -sign(A[k,k])·‖A[k:,k]‖₂ (the sign choice avoids
//     catastrophic cancellation when forming v[k] = A[k,k] − α), τ = 2/vᵀv.
//   - Stage 3: apply the reflection to the working copy (A ← H·A, forming R)
//     and accumulate it into Q from the right (Q ← Q·H), so Q·R = A.
//
// Behavior highlights:
//   - Deterministic column order; zero sub-columns are skipped (no-op
//     reflection), so rank-deficient input still factors.
//   - Returned Q is the full m×m orthogonal factor; R is m×n with zeros
//     below the diagonal.
//
// Complexity: Time O(m·n^2), Space O(m^2) for Q.
func (f *QR) Decompose() (*matrix.Dense, *matrix.Dense, error) {
	if f.factored {
		return f.q, f.r, nil
	}

	m, n := f.m, f.n
	q, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, nil, qrErrorf(opDecompose, err)
	}
	qd := q.Data()
	a := f.a

	v := make([]float64, m) // current Householder vector (rows k..m-1 active)
	var (
		i, j, k            int
		norm, alpha        float64
		beta, tau, sum, qv float64
	)
	for k = 0; k < n; k++ {
		// Norm of the sub-column A[k:, k].
		norm = 0
		for i = k; i < m; i++ {
			norm += a[i*n+k] * a[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column: nothing to reflect
		}

		// α carries the opposite sign of the pivot entry being eliminated.
		alpha = -math.Copysign(norm, a[k*n+k])

		// Build v = x − α·e_k over the active rows.
		for i = k; i < m; i++ {
			v[i] = a[i*n+k]
		}
		v[k] -= alpha

		// β = vᵀv and τ = 2/β. β can only vanish if the sub-column was zero,
		// which was excluded above, but guard the division regardless.
		beta = 0
		for i = k; i < m; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau = 2.0 / beta

		// Apply the reflection to the working copy: A ← A − τ·v·(vᵀA).
		for j = k; j < n; j++ {
			sum = matrix.ZeroSum
			for i = k; i < m; i++ {
				sum += v[i] * a[i*n+j]
			}
			for i = k; i < m; i++ {
				a[i*n+j] -= tau * v[i] * sum
			}
		}

		// Accumulate into Q from the right: Q ← Q − τ·(Q·v)·vᵀ.
		for i = 0; i < m; i++ {
			qv = matrix.ZeroSum
			for j = k; j < m; j++ {
				qv += qd[i*m+j] * v[j]
			}
			qv *= tau
			for j = k; j < m; j++ {
				qd[i*m+j] -= qv * v[j]
			}
		}
	}

	// Materialize R: copy the eliminated working buffer, clamping the
	// sub-diagonal to exact zeros (the reflections leave rounding dust there).
	r, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, nil, qrErrorf(opDecompose, err)
	}
	rd := r.Data()
	for i = 0; i < m; i++ {
		for j = i; j < n; j++ {
			rd[i*n+j] = a[i*n+j]
		}
	}

	f.q, f.r, f.factored = q, r, true

	return q, r, nil
}
