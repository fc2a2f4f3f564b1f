// SPDX-License-Identifier: MIT
// Package eigen - multi-eigenpair algorithms: deflation-based projected
// iteration, Hessenberg reduction, the shifted QR algorithm, and the Eig
// facade.

package eigen

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/qr"
)

// Operation tags for unified error wrapping.
const (
	opProjected   = "eigen.ProjectedIteration"
	opHessenberg  = "eigen.Hessenberg"
	opQRAlgorithm = "eigen.QRAlgorithm"
	opEig         = "eigen.Eig"
)

// recoveryPerturb nudges an eigenvector-recovery shift off an exact
// eigenvalue when the shifted solve comes back singular (e.g. on diagonal
// input, where the QR iteration lands on eigenvalues exactly).
const recoveryPerturb = 1e-10

// Eigenpairs is an ordered collection of eigenpairs: Values[i] pairs with
// column i of Vectors. Eigenvectors are unit L2 norm by convention; with
// sorting enabled, values appear in decreasing order of absolute magnitude.
type Eigenpairs struct {
	Values  []float64
	Vectors *matrix.Dense
}

// ProjectedIteration finds the k largest-magnitude eigenpairs of a symmetric
// matrix by combining power iteration with deflation.
//
// Implementation:
//   - Stage 1: symmetry gate; validate k ∈ [1, N].
//   - Stage 2: for each of the k slots, run power iteration from a random
//     start, but first project the candidate orthogonal to every previously
//     found eigenvector (subtract each one's projection) at every step —
//     this deflation forces convergence to the next not-yet-found
//     eigenpair. A slot exits early once successive estimates differ by
//     less than tol elementwise, or after MaxIter steps (best-effort).
//   - Stage 3: optionally sort by decreasing |eigenvalue|.
//
// Behavior highlights:
//   - Returned eigenvectors are mutually orthonormal by construction.
//   - The observer fires once per inner iteration with the current delta.
//
// Errors:
//   - matrix.ErrAsymmetry and shape sentinels from validation.
//   - matrix.ErrEigenCount when k is outside [1, N].
//
// Complexity: Time O(k·MaxIter·n^2), Space O(n·k).
func ProjectedIteration(a matrix.Matrix, k int, opts ...Option) (*Eigenpairs, error) {
	if err := matrix.ValidateSymmetric(a, DefaultSymmetryTol); err != nil {
		return nil, eigenErrorf(opProjected, err)
	}
	n := a.Rows()
	if k < 1 || k > n {
		return nil, eigenErrorf(opProjected, matrix.ErrEigenCount)
	}
	o := gatherOptions(opts...)

	vectors, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, eigenErrorf(opProjected, err)
	}
	values := make([]float64, k)
	found := make([][]float64, 0, k) // previously extracted eigenvectors

	var (
		slot, iter, i, t int
		proj, delta, d   float64
		v, vNew          []float64
	)
	for slot = 0; slot < k; slot++ {
		if v, err = matrix.RandomVec(o.rng, n); err != nil {
			return nil, eigenErrorf(opProjected, err)
		}
		for iter = 0; iter < o.maxIter; iter++ {
			// Deflation: project out every eigenvector found so far.
			for i = 0; i < len(found); i++ {
				if proj, err = matrix.Dot(v, found[i]); err != nil {
					return nil, eigenErrorf(opProjected, err)
				}
				for t = 0; t < n; t++ {
					v[t] -= proj * found[i][t] // found vectors are unit-norm
				}
			}

			// One power step on the deflated candidate.
			if vNew, err = matrix.MatVec(a, v); err != nil {
				return nil, eigenErrorf(opProjected, err)
			}
			if vNew, err = matrix.Normalize(vNew); err != nil {
				return nil, eigenErrorf(opProjected, err)
			}

			// Early exit on elementwise agreement with the previous estimate.
			delta = 0
			for t = 0; t < n; t++ {
				if d = math.Abs(vNew[t] - v[t]); d > delta {
					delta = d
				}
			}
			o.observe(iter, delta)
			if delta < o.tol {
				break
			}
			v = vNew
		}

		if values[slot], err = RayleighQuotient(a, v); err != nil {
			return nil, eigenErrorf(opProjected, err)
		}
		if err = vectors.SetCol(slot, v); err != nil {
			return nil, eigenErrorf(opProjected, err)
		}
		found = append(found, v)
	}

	out := &Eigenpairs{Values: values, Vectors: vectors}
	if o.sort {
		if err = sortByMagnitude(out); err != nil {
			return nil, eigenErrorf(opProjected, err)
		}
	}

	return out, nil
}

// Hessenberg reduces a square matrix to upper-Hessenberg form (zero below
// the first sub-diagonal) via Householder similarity transforms applied from
// both sides: A ← HᵀAH. For symmetric input the result is tridiagonal.
//
// This is a similarity transform — eigenvalues of the Hessenberg form equal
// those of the original matrix up to floating-point error — which is the
// invariant the QR algorithm exploits.
//
// Inputs:
//   - a: square matrix (symmetry is detected, not required).
//   - calcQ: when true, the product of all Householder matrices is
//     accumulated (reflections composed in reverse application order) and
//     returned as the explicit orthogonal similarity transform Q.
//
// Returns:
//   - the Hessenberg form; and Q when calcQ is true, nil otherwise.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square).
//
// Complexity: Time O(n^3), Space O(n^2).
func Hessenberg(a matrix.Matrix, calcQ bool) (*matrix.Dense, *matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, eigenErrorf(opHessenberg, err)
	}
	h, err := denseCopy(a)
	if err != nil {
		return nil, nil, eigenErrorf(opHessenberg, err)
	}
	isSymm := matrix.IsSymmetric(a)

	n := a.Rows()
	hd := h.Data()
	// vs[i] is the reflector built at step i, acting on rows i+1..n-1;
	// nil marks a skipped (already zero) column. vtv caches vᵀv.
	vs := make([][]float64, 0, maxInt(n-2, 0))
	vtv := make([]float64, 0, maxInt(n-2, 0))

	var (
		i, j, t, step, m int
		c, s, sum, f     float64
	)
	for step = 0; step < n-2; step++ {
		m = n - step - 1 // active rows step+1..n-1

		// ‖A[step+1:, step]‖₂ — the sub-column to annihilate.
		c = 0
		for t = 0; t < m; t++ {
			c += hd[(step+1+t)*n+step] * hd[(step+1+t)*n+step]
		}
		c = math.Sqrt(c)
		if c == 0 {
			vs, vtv = append(vs, nil), append(vtv, 0) // nothing to reflect
			continue
		}

		// v = a + sign(a[0])·c·e0; the sign choice avoids cancellation.
		v := make([]float64, m)
		for t = 0; t < m; t++ {
			v[t] = hd[(step+1+t)*n+step]
		}
		v[0] += math.Copysign(c, v[0])

		s = 0
		for t = 0; t < m; t++ {
			s += v[t] * v[t]
		}
		if s == 0 {
			vs, vtv = append(vs, nil), append(vtv, 0)
			continue
		}
		vs, vtv = append(vs, v), append(vtv, s)

		// Left transform: rows step+1.., columns step..n-1.
		for j = step; j < n; j++ {
			sum = matrix.ZeroSum
			for t = 0; t < m; t++ {
				sum += v[t] * hd[(step+1+t)*n+j]
			}
			f = 2 * sum / s
			for t = 0; t < m; t++ {
				hd[(step+1+t)*n+j] -= f * v[t]
			}
		}

		// Right transform: columns step+1.., all rows (rows < step are
		// already zeroed in these columns when A is symmetric).
		i = 0
		if isSymm {
			i = step
		}
		for j = i; j < n; j++ {
			sum = matrix.ZeroSum
			for t = 0; t < m; t++ {
				sum += hd[j*n+step+1+t] * v[t]
			}
			f = 2 * sum / s
			for t = 0; t < m; t++ {
				hd[j*n+step+1+t] -= f * v[t]
			}
		}
	}

	if !calcQ {
		return h, nil, nil
	}

	// Accumulate Q column by column, applying the reflections in reverse
	// application order; reflector r covers rows r+1..n-1.
	q, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, eigenErrorf(opHessenberg, err)
	}
	qd := q.Data()
	var col, r int
	for col = 0; col < n; col++ {
		for j = len(vs) - 1; j >= 0; j-- {
			if vs[j] == nil {
				continue
			}
			r = j
			m = n - r - 1
			sum = matrix.ZeroSum
			for t = 0; t < m; t++ {
				sum += vs[j][t] * qd[(r+1+t)*n+col]
			}
			f = 2 * sum / vtv[j]
			for t = 0; t < m; t++ {
				qd[(r+1+t)*n+col] -= f * vs[j][t]
			}
		}
	}

	return h, q, nil
}

// QRAlgorithm finds all eigenpairs of a symmetric matrix via the shifted QR
// iteration — the primary all-eigenpairs method of this package.
//
// Implementation:
//   - Stage 1: symmetry gate; keep the original matrix aside; optionally
//     reduce the working copy to Hessenberg (tridiagonal) form — strongly
//     recommended, it slashes per-iteration cost (WithHessenberg, on by
//     default).
//   - Stage 2: iterate A ← R·Q + μI where (Q,R) factors A − μI and the
//     shift μ is the bottom-right diagonal entry (Rayleigh-quotient-style);
//     stop when successive iterates agree elementwise within tol, or after
//     MaxIter sweeps (best-effort).
//   - Stage 3: the diagonal now approximates every eigenvalue; recover each
//     eigenvector with ONE Rayleigh-quotient-iteration step against the
//     original (un-reduced) matrix using that value as the shift — the
//     near-singular shifted solve is exactly what makes the recovered
//     vector well-conditioned. A shift landing exactly on an eigenvalue is
//     retried once with a tiny relative perturbation.
//   - Stage 4: optionally sort by decreasing |eigenvalue|.
//
// Errors:
//   - matrix.ErrAsymmetry and shape sentinels from validation.
//
// Complexity: Time O(n^3 + sweeps·n^3), Space O(n^2).
func QRAlgorithm(a matrix.Matrix, opts ...Option) (*Eigenpairs, error) {
	if err := matrix.ValidateSymmetric(a, DefaultSymmetryTol); err != nil {
		return nil, eigenErrorf(opQRAlgorithm, err)
	}
	o := gatherOptions(opts...)

	backup, err := denseCopy(a) // eigenvector recovery runs against this
	if err != nil {
		return nil, eigenErrorf(opQRAlgorithm, err)
	}
	work := backup.Clone().(*matrix.Dense)
	if o.hessenberg {
		if work, _, err = Hessenberg(work, false); err != nil {
			return nil, eigenErrorf(opQRAlgorithm, err)
		}
	}

	n := a.Rows()
	var (
		iter, i  int
		mu       float64
		delta, d float64
	)
	for iter = 0; iter < o.maxIter; iter++ {
		// Shift by the bottom-right diagonal entry.
		mu = work.Data()[(n-1)*n+(n-1)]
		shifted := denseShift(work, -mu)

		f, err := qr.New(shifted)
		if err != nil {
			return nil, eigenErrorf(opQRAlgorithm, err)
		}
		qf, rf, err := f.Decompose()
		if err != nil {
			return nil, eigenErrorf(opQRAlgorithm, err)
		}
		rq, err := matrix.Mul(rf, qf)
		if err != nil {
			return nil, eigenErrorf(opQRAlgorithm, err)
		}
		next := denseShift(rq.(*matrix.Dense), +mu) // Mul always returns *Dense

		// Elementwise distance between successive iterates.
		delta = 0
		wd, nd := work.Data(), next.Data()
		for i = 0; i < n*n; i++ {
			if d = math.Abs(nd[i] - wd[i]); d > delta {
				delta = d
			}
		}
		o.observe(iter, delta)
		if delta < o.tol {
			break
		}
		work = next
	}

	// The diagonal of the converged iterate approximates the eigenvalues.
	mus, err := matrix.Diagonal(work)
	if err != nil {
		return nil, eigenErrorf(opQRAlgorithm, err)
	}

	values := make([]float64, n)
	vectors, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, eigenErrorf(opQRAlgorithm, err)
	}
	var vec []float64
	for i = 0; i < n; i++ {
		mu = mus[i]
		values[i], vec, err = RayleighQuotientIteration(backup, mu, WithMaxIter(1), WithRand(o.rng))
		if errors.Is(err, matrix.ErrSingular) {
			// Exact eigenvalue shift: nudge it off the singularity and retry.
			mu += recoveryPerturb * (1 + math.Abs(mu))
			values[i], vec, err = RayleighQuotientIteration(backup, mu, WithMaxIter(1), WithRand(o.rng))
		}
		if err != nil {
			return nil, eigenErrorf(opQRAlgorithm, err)
		}
		if err = vectors.SetCol(i, vec); err != nil {
			return nil, eigenErrorf(opQRAlgorithm, err)
		}
	}

	out := &Eigenpairs{Values: values, Vectors: vectors}
	if o.sort {
		if err = sortByMagnitude(out); err != nil {
			return nil, eigenErrorf(opQRAlgorithm, err)
		}
	}

	return out, nil
}

// Eig computes all eigenpairs of a symmetric matrix. It is the single
// recommended entry point: the shifted QR algorithm with Hessenberg
// pre-reduction always enabled.
//
// Errors: as QRAlgorithm.
// Complexity: as QRAlgorithm.
func Eig(a matrix.Matrix, opts ...Option) (*Eigenpairs, error) {
	out, err := QRAlgorithm(a, append(append([]Option(nil), opts...), WithHessenberg(true))...)
	if err != nil {
		return nil, eigenErrorf(opEig, err)
	}

	return out, nil
}

// sortByMagnitude reorders eigenpairs in place by decreasing |value|,
// keeping values and vector columns paired. Stable, so equal magnitudes
// keep their discovery order.
func sortByMagnitude(ep *Eigenpairs) error {
	k := len(ep.Values)
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return math.Abs(ep.Values[idx[a]]) > math.Abs(ep.Values[idx[b]])
	})

	n := ep.Vectors.Rows()
	values := make([]float64, k)
	vectors, err := matrix.NewDense(n, k)
	if err != nil {
		return err
	}
	var col []float64
	for dst, src := range idx {
		values[dst] = ep.Values[src]
		if col, err = ep.Vectors.Col(src); err != nil {
			return err
		}
		if err = vectors.SetCol(dst, col); err != nil {
			return err
		}
	}
	ep.Values, ep.Vectors = values, vectors

	return nil
}

// denseCopy materializes any Matrix into an owned *Dense.
func denseCopy(a matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	r, c := a.Rows(), a.Cols()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.Data()[i*c+j] = v
		}
	}

	return out, nil
}

// denseShift returns a fresh copy of d with shift added to the diagonal.
func denseShift(d *matrix.Dense, shift float64) *matrix.Dense {
	out := d.Clone().(*matrix.Dense)
	n := out.Rows()
	od := out.Data()
	for i := 0; i < n; i++ {
		od[i*n+i] += shift
	}

	return out
}

// maxInt is a tiny local helper (capacity hints only).
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
