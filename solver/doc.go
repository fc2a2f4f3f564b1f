// Package solver exposes the generic linear-system entry points of the
// toolkit: a one-shot LU-backed Solve/SolveMatrix pair, and a
// factorization-free gradient-descent alternative for symmetric
// positive-definite systems.
//
// ⚙️ Usage:
//
//	x, err := solver.Solve(a, b)              // A·x = b, partial-pivoted LU
//	X, err := solver.SolveMatrix(a, B)        // stacked right-hand sides
//	x, err := solver.GradientDescent(a, b, nil) // SPD systems, iterative
//
// Solve and SolveMatrix dispatch to lu with partial pivoting — the stable
// default — then run forward/backward substitution. Hold a lu.LU directly
// when solving against the same matrix repeatedly.
package solver
