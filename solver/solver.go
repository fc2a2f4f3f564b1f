// SPDX-License-Identifier: MIT
// Package solver - generic linear-system entry points over the LU engine.

package solver

import (
	"fmt"

	"github.com/katalvlaran/linalg/lu"
	"github.com/katalvlaran/linalg/matrix"
)

// Operation tags for unified error wrapping.
const (
	opSolve       = "solver.Solve"
	opSolveMatrix = "solver.SolveMatrix"
)

// solverErrorf wraps err with an operation tag, preserving the sentinel via %w.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve solves A·x = b for a single right-hand-side vector.
//
// This is the one-shot convenience entry point: it factors A with
// partial-pivoted LU (the stable default) and runs the two triangular
// substitutions. Callers solving against the same A repeatedly should hold a
// lu.LU and reuse its cached factorization instead.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch on shape violations.
//   - matrix.ErrSingular when elimination meets an exactly zero pivot.
//
// Complexity: Time O(n^3), Space O(n^2).
func Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	f, err := lu.New(a, lu.PivotPartial)
	if err != nil {
		return nil, solverErrorf(opSolve, err)
	}
	x, err := f.SolveVec(b)
	if err != nil {
		return nil, solverErrorf(opSolve, err)
	}

	return x, nil
}

// SolveMatrix solves A·X = B for a matrix of stacked right-hand-side
// columns; the output has the same shape as B.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch on shape violations.
//   - matrix.ErrSingular when elimination meets an exactly zero pivot.
//
// Complexity: Time O(n^3 + n^2·m) for m right-hand sides, Space O(n·m).
func SolveMatrix(a, b matrix.Matrix) (matrix.Matrix, error) {
	f, err := lu.New(a, lu.PivotPartial)
	if err != nil {
		return nil, solverErrorf(opSolveMatrix, err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, solverErrorf(opSolveMatrix, err)
	}

	return x, nil
}
