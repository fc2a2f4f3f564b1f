// Package lu factors a square matrix into triangular factors under a
// selectable pivoting strategy and solves linear systems with the stored
// factorization.
//
// 🚀 What is LU decomposition?
//
//	Gaussian elimination recorded as matrices: A is rewritten as the product
//	of a unit-lower-triangular L (the elimination multipliers) and an
//	upper-triangular U (the eliminated matrix). Row (and optionally column)
//	permutations keep the pivots large, which is what keeps the arithmetic
//	stable. Once factored, every solve against A costs only two triangular
//	substitutions.
//
// ✨ Key features:
//   - three pivoting modes: none (L·U = A), partial (P·A = L·U),
//     full (P·A·Q = L·U)
//   - explicit permutation matrices AND index-array forms on the result
//   - vector and stacked multi-column right-hand sides, same-shape output
//   - one factorization, many solves: Decompose/Solve share the cached factors
//
// ⚙️ Usage:
//
//	f, err := lu.New(a, lu.PivotPartial)
//	if err != nil { ... }
//	fact, err := f.Decompose()       // fact.P, fact.L, fact.U
//	x, err := f.SolveVec(b)          // solves A·x = b
//
// Pivoting trade-offs:
//
//   - PivotNone is the deliberately minimal path: it requires pivot-safe
//     input (e.g. diagonally dominant); an exactly zero pivot returns
//     matrix.ErrSingular and a tiny one quietly amplifies rounding error.
//   - PivotPartial is the default choice for solving (used by solver and by
//     eigen's inverse iteration).
//   - PivotFull maximizes stability at the cost of an O(n^2) pivot scan per
//     step.
//
// Performance: Decompose O(n^3) time / O(n^2) space; each solve O(n^2).
package lu
