// Package eigen computes eigenvalues and eigenvectors of real symmetric
// matrices with classic iterative methods built from first principles.
//
// 🚀 What lives here?
//
//	Single-pair methods:
//	  - PowerIteration: the dominant (largest |λ|) eigenpair.
//	  - InverseIteration: the eigenpair closest to a given shift, driven by
//	    one LU factorization reused across every step.
//	  - RayleighQuotientIteration: cubically convergent refinement that
//	    re-estimates its own shift from the current vector.
//
//	All-pairs methods:
//	  - ProjectedIteration: the k largest-magnitude pairs via power
//	    iteration plus deflation; returned vectors are orthonormal.
//	  - Hessenberg: orthogonal similarity reduction to Hessenberg
//	    (tridiagonal, for symmetric input) form.
//	  - QRAlgorithm / Eig: the shifted QR iteration, the workhorse that
//	    recovers every eigenpair.
//
// ✨ Key features:
//   - symmetric-only contract enforced up front (matrix.ErrAsymmetry)
//   - deterministic by default: every random start vector comes from a
//     fixed-seed source; inject your own with WithRand
//   - functional options for budgets and tolerances (WithMaxIter, WithTol),
//     ordering (WithSort), reduction (WithHessenberg), and progress
//     callbacks (WithObserver)
//
// ⚙️ Usage:
//
//	pairs, err := eigen.Eig(a)
//	if err != nil { ... }
//	// pairs.Values[i] pairs with column i of pairs.Vectors,
//	// sorted by decreasing |eigenvalue|.
//
// Performance: single-pair methods are O(MaxIter·n^2) (plus one O(n^3)
// factorization for inverse iteration); Eig is O(n^3) per sweep.
package eigen
