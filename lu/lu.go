// SPDX-License-Identifier: MIT
// Package lu - LU factorization with selectable pivoting and the triangular
// solver built on it.

package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// Pivoting selects the pivot strategy used during elimination.
//
//   - PivotNone    — no reordering; L·U = A exactly. Deliberately minimal/fast
//     path: an exactly zero pivot returns matrix.ErrSingular, a near-zero
//     pivot silently amplifies rounding error. Reserve for diagonally
//     dominant or otherwise pivot-safe input.
//   - PivotPartial — at each step the largest-magnitude entry in the current
//     column (rows k..n-1) becomes the pivot; P·A = L·U.
//   - PivotFull    — the largest-magnitude entry of the remaining submatrix
//     becomes the pivot, permuting rows and columns; P·A·Q = L·U.
type Pivoting int

const (
	// PivotNone disables pivoting entirely.
	PivotNone Pivoting = iota

	// PivotPartial enables row pivoting (the stable default for solving).
	PivotPartial

	// PivotFull enables both row and column pivoting.
	PivotFull
)

// Operation tags for unified error wrapping.
const (
	opNew       = "lu.New"
	opDecompose = "lu.Decompose"
	opSolve     = "lu.Solve"
)

// luErrorf wraps err with an operation tag, preserving the sentinel via %w.
func luErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Factorization holds the factors produced by Decompose.
//
// Which fields are set depends on the pivoting mode:
//   - PivotNone:    L, U           (P and Q are nil)      L·U    = A
//   - PivotPartial: P, L, U        (Q is nil)             P·A    = L·U
//   - PivotFull:    P, L, U, Q                            P·A·Q  = L·U
//
// L is unit-lower-triangular, U upper-triangular. RowPerm/ColPerm are the
// index forms of P and Q: row i of the permuted system is original row
// RowPerm[i], column j original column ColPerm[j]. All factors are owned by
// the caller; the input matrix is never aliased.
type Factorization struct {
	L, U *matrix.Dense
	P, Q *matrix.Dense // explicit permutation matrices (nil when not applicable)

	RowPerm []int // P in index form: permuted row i ← original row RowPerm[i]
	ColPerm []int // Q in index form: permuted col j ← original col ColPerm[j]

	Pivoting Pivoting
}

// LU factors a square matrix under a chosen pivoting strategy and solves
// linear systems with the stored factorization. Construct with New; the
// input matrix is copied once and never mutated.
type LU struct {
	n        int
	pivoting Pivoting

	// Combined in-place factorization: strictly-lower holds the multipliers
	// of L, upper (incl. diagonal) holds U. Filled by Decompose.
	lu       []float64
	rowPerm  []int
	colPerm  []int
	factored bool
}

// New captures a private copy of the square matrix a for factorization.
//
// Implementation:
//   - Stage 1: validate a non-nil, square, and the pivoting tag known.
//   - Stage 2: copy a into the combined scratch buffer (caller's matrix is
//     read once and never observed again).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
//     matrix.ErrBadPivoting.
//
// Complexity: Time O(n^2), Space O(n^2).
func New(a matrix.Matrix, pivoting Pivoting) (*LU, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, luErrorf(opNew, err)
	}
	if pivoting != PivotNone && pivoting != PivotPartial && pivoting != PivotFull {
		return nil, luErrorf(opNew, matrix.ErrBadPivoting)
	}

	n := a.Rows()
	buf := make([]float64, n*n)
	// Fast-path: flat copy from *Dense; fallback reads via At.
	if d, ok := a.(*matrix.Dense); ok {
		copy(buf, d.Data())
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = a.At(i, j)
				if err != nil {
					return nil, luErrorf(opNew, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				buf[i*n+j] = v
			}
		}
	}

	return &LU{n: n, pivoting: pivoting, lu: buf}, nil
}

// Decompose runs the elimination and returns the factors for the configured
// pivoting mode. Idempotent: repeated calls reuse the stored factorization
// and only rebuild the returned matrices.
//
// Implementation:
//   - Stage 1: initialize identity row/column permutations.
//   - Stage 2: for each elimination step k: select the pivot per mode, swap
//     rows (and columns for PivotFull), guard an exactly zero pivot, then
//     eliminate below the pivot storing multipliers in place.
//   - Stage 3: split the combined buffer into L (unit diagonal) and U, and
//     materialize P/Q from the index permutations.
//
// Behavior highlights:
//   - Deterministic pivot scan (first maximum wins in fixed i→j order).
//   - Exactly zero pivots return matrix.ErrSingular in every mode; near-zero
//     pivots are NOT guarded and propagate Inf/NaN downstream permissively.
//
// Returns:
//   - *Factorization with fields populated per mode (see type docs).
//
// Errors:
//   - matrix.ErrSingular on an exactly zero pivot.
//
// Complexity: Time O(n^3) (+O(n^3) pivot scans under PivotFull), Space O(n^2).
func (f *LU) Decompose() (*Factorization, error) {
	if !f.factored {
		if err := f.factorize(); err != nil {
			return nil, err
		}
	}

	return f.export()
}

// factorize performs the in-place elimination once.
func (f *LU) factorize() error {
	n := f.n
	a := f.lu

	// Identity permutations; swaps below record the pivot choices.
	f.rowPerm = make([]int, n)
	f.colPerm = make([]int, n)
	for i := 0; i < n; i++ {
		f.rowPerm[i] = i
		f.colPerm[i] = i
	}

	var (
		k, i, j, pr, pc int
		pivot, mult     float64
		best, cand      float64
	)
	for k = 0; k < n; k++ {
		// Pivot selection per mode.
		switch f.pivoting {
		case PivotPartial:
			// Largest |entry| in column k, rows k..n-1.
			pr = k
			best = math.Abs(a[k*n+k])
			for i = k + 1; i < n; i++ {
				cand = math.Abs(a[i*n+k])
				if cand > best {
					best, pr = cand, i
				}
			}
			f.swapRows(k, pr)
		case PivotFull:
			// Largest |entry| in the remaining submatrix [k:,k:].
			pr, pc = k, k
			best = math.Abs(a[k*n+k])
			for i = k; i < n; i++ {
				for j = k; j < n; j++ {
					cand = math.Abs(a[i*n+j])
					if cand > best {
						best, pr, pc = cand, i, j
					}
				}
			}
			f.swapRows(k, pr)
			f.swapCols(k, pc)
		case PivotNone:
			// Known-fragile path: take the diagonal entry as-is.
		}

		// Zero-pivot guard (deterministic singularity detection).
		pivot = a[k*n+k]
		if pivot == 0 {
			return luErrorf(opDecompose, matrix.ErrSingular)
		}

		// Eliminate below the pivot; store multipliers in the L slot.
		for i = k + 1; i < n; i++ {
			mult = a[i*n+k] / pivot
			a[i*n+k] = mult
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= mult * a[k*n+j]
			}
		}
	}

	f.factored = true

	return nil
}

// swapRows exchanges rows i and j of the scratch buffer and the permutation.
func (f *LU) swapRows(i, j int) {
	if i == j {
		return
	}
	n := f.n
	bi, bj := i*n, j*n
	for k := 0; k < n; k++ {
		f.lu[bi+k], f.lu[bj+k] = f.lu[bj+k], f.lu[bi+k]
	}
	f.rowPerm[i], f.rowPerm[j] = f.rowPerm[j], f.rowPerm[i]
}

// swapCols exchanges columns i and j of the scratch buffer and the permutation.
func (f *LU) swapCols(i, j int) {
	if i == j {
		return
	}
	n := f.n
	for k := 0; k < n; k++ {
		f.lu[k*n+i], f.lu[k*n+j] = f.lu[k*n+j], f.lu[k*n+i]
	}
	f.colPerm[i], f.colPerm[j] = f.colPerm[j], f.colPerm[i]
}

// export materializes the Factorization from the combined buffer.
func (f *LU) export() (*Factorization, error) {
	n := f.n
	l, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, luErrorf(opDecompose, err)
	}
	u, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, luErrorf(opDecompose, err)
	}
	ld, ud := l.Data(), u.Data()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			ld[i*n+j] = f.lu[i*n+j] // multipliers below the unit diagonal
		}
		for j = i; j < n; j++ {
			ud[i*n+j] = f.lu[i*n+j] // upper triangle incl. diagonal
		}
	}

	out := &Factorization{
		L:        l,
		U:        u,
		Pivoting: f.pivoting,
	}
	if f.pivoting == PivotPartial || f.pivoting == PivotFull {
		out.RowPerm = append([]int(nil), f.rowPerm...)
		if out.P, err = permMatrixRows(f.rowPerm); err != nil {
			return nil, luErrorf(opDecompose, err)
		}
	}
	if f.pivoting == PivotFull {
		out.ColPerm = append([]int(nil), f.colPerm...)
		if out.Q, err = permMatrixCols(f.colPerm); err != nil {
			return nil, luErrorf(opDecompose, err)
		}
	}

	return out, nil
}

// permMatrixRows builds P with P[i, perm[i]] = 1, so (P·A)[i,:] = A[perm[i],:].
func permMatrixRows(perm []int) (*matrix.Dense, error) {
	n := len(perm)
	p, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		p.Data()[i*n+perm[i]] = 1.0
	}

	return p, nil
}

// permMatrixCols builds Q with Q[perm[j], j] = 1, so (A·Q)[:,j] = A[:,perm[j]].
func permMatrixCols(perm []int) (*matrix.Dense, error) {
	n := len(perm)
	q, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		q.Data()[perm[j]*n+j] = 1.0
	}

	return q, nil
}

// SolveVec solves A·x = b for a single right-hand-side vector using the
// stored factorization (factorizing on first use).
//
// Implementation:
//   - Stage 1: permute b by the recorded row pivots.
//   - Stage 2: forward substitution L·y = Pb (unit diagonal, no division).
//   - Stage 3: backward substitution U·z = y (diagonal divisions).
//   - Stage 4: undo the column permutation: x[ColPerm[j]] = z[j].
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch on a bad b.
//   - matrix.ErrSingular propagated from factorization.
//
// Complexity: Time O(n^2) after the O(n^3) one-time factorization, Space O(n).
func (f *LU) SolveVec(b []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(b, f.n); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	if !f.factored {
		if err := f.factorize(); err != nil {
			return nil, err
		}
	}

	n := f.n
	x := make([]float64, n)
	// Apply the row permutation: y0[i] = b[rowPerm[i]].
	for i := 0; i < n; i++ {
		x[i] = b[f.rowPerm[i]]
	}

	var (
		i, k int
		sum  float64
	)
	// Forward substitution against the unit-lower triangle.
	for i = 0; i < n; i++ {
		sum = matrix.ZeroSum
		for k = 0; k < i; k++ {
			sum += f.lu[i*n+k] * x[k]
		}
		x[i] -= sum // L[i,i] == 1, no division
	}
	// Backward substitution against the upper triangle.
	for i = n - 1; i >= 0; i-- {
		sum = matrix.ZeroSum
		for k = i + 1; k < n; k++ {
			sum += f.lu[i*n+k] * x[k]
		}
		x[i] = (x[i] - sum) / f.lu[i*n+i]
	}

	// Undo the column permutation (identity unless PivotFull).
	if f.pivoting == PivotFull {
		out := make([]float64, n)
		for j := 0; j < n; j++ {
			out[f.colPerm[j]] = x[j]
		}
		return out, nil
	}

	return x, nil
}

// Solve solves A·X = B for a matrix of stacked right-hand-side columns,
// column by column, producing output of the same shape as B.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (B.Rows != n).
//   - matrix.ErrSingular propagated from factorization.
//
// Complexity: Time O(n^2·m) for m right-hand sides, Space O(n·m).
func (f *LU) Solve(b matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	if b.Rows() != f.n {
		return nil, luErrorf(opSolve, matrix.ErrDimensionMismatch)
	}

	cols := b.Cols()
	out, err := matrix.NewDense(f.n, cols)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}
	col := make([]float64, f.n)
	var i, j int
	var v float64
	var x []float64
	for j = 0; j < cols; j++ {
		// Extract column j of B.
		for i = 0; i < f.n; i++ {
			v, err = b.At(i, j)
			if err != nil {
				return nil, luErrorf(opSolve, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			col[i] = v
		}
		x, err = f.SolveVec(col)
		if err != nil {
			return nil, err
		}
		if err = out.SetCol(j, x); err != nil {
			return nil, luErrorf(opSolve, err)
		}
	}

	return out, nil
}
