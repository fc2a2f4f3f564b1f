// Package matrix provides the dense float64 substrate for the linalg
// toolkit: row-major storage, fail-fast validators, element-wise and
// product kernels, compensated-summation norms, and structural helpers.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with safe At/Set (sentinel errors, no panics)
//     and a flat Data() slice for fast paths in the decomposition packages.
//   - Kernels: Add, Sub, Mul, Scale, Transpose, MatVec, MultiDot — each with
//     a *Dense fast path and a generic Matrix fallback.
//   - Norms: Kahan-compensated p-norm, L2Norm, Dot, Normalize.
//   - Structure: UpperDiag/LowerDiag/UnitDiag/Diagonal, BasisVec/BasisArr.
//   - Predicates: IsSymmetric, IsHermitian, Herm (conjugate transpose).
//
// Everything here is implemented directly on float64 slices — no BLAS, no
// LAPACK — because these kernels are the point of the library, not plumbing
// around a vendor backend. All functions are pure: inputs are never mutated,
// results are freshly allocated.
//
// See lu, qr, solver and eigen for the decompositions and eigensolvers built
// on top of this package.
package matrix
