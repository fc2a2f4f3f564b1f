// Package qr factors a matrix into an orthogonal factor and an
// upper-triangular factor via Householder reflections.
//
// 🚀 What is QR decomposition?
//
//	Any m×n matrix with m ≥ n can be written A = Q·R where Q is orthogonal
//	(its columns are an orthonormal basis, QᵀQ = I) and R is
//	upper-triangular. Each Householder reflection zeroes one sub-diagonal
//	column; composing them in order yields R, and their product yields Q.
//
// ✨ Key features:
//   - sign-safe reflectors: α = -sign(A[k,k])·‖A[k:,k]‖₂ avoids catastrophic
//     cancellation when the pivot dominates its column
//   - rectangular input (m ≥ n) with the full m×m Q
//   - zero sub-columns skipped, so rank-deficient matrices still factor
//
// ⚙️ Usage:
//
//	f, err := qr.New(a)
//	if err != nil { ... }
//	q, r, err := f.Decompose() // q·r reconstructs a
//
// QR is the engine of the shifted QR eigenvalue iteration in package eigen.
//
// Performance: O(m·n^2) time, O(m^2) space for Q.
package qr
