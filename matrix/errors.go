// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and the packages layered on top of it (lu, qr, solver, eigen).
// All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, Mul where a.Cols != b.Rows, or a
	// right-hand side whose row count disagrees with the system.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrSingular is returned when an exactly zero pivot is encountered during
	// factorization or substitution. Near-zero pivots are NOT guarded: they
	// propagate Inf/NaN permissively, as documented on each routine.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrBadNormOrder signals a p-norm request with p < 1 (not a norm).
	ErrBadNormOrder = errors.New("matrix: norm order must be >= 1")

	// ErrNotOneDimensional signals that a vector-only routine received a
	// matrix that is neither a single row nor a single column.
	ErrNotOneDimensional = errors.New("matrix: input must be one-dimensional")

	// ErrOutOfBasisRange signals a basis-vector index k >= n.
	ErrOutOfBasisRange = errors.New("matrix: basis index exceeds dimension")

	// ErrEigenCount signals a requested eigenpair count outside [1, N].
	ErrEigenCount = errors.New("matrix: eigenpair count out of range")

	// ErrBadPivoting signals an unknown pivoting strategy tag.
	ErrBadPivoting = errors.New("matrix: unknown pivoting strategy")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (e.g. an invalid tolerance).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
