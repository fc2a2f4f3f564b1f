// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for the iterative eigensolvers.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness — the
//     random source is explicit and defaults to a fixed seed, so identical
//     calls give identical results unless the caller injects entropy.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package eigen

import (
	"math"
	"math/rand"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxIter caps every iterative eigensolver loop.
	DefaultMaxIter = 1000

	// DefaultTol is the absolute elementwise tolerance used by the
	// convergence checks of projected iteration and the QR algorithm.
	//
	// NOTE: the tolerance is absolute, not relative to ‖A‖ — on poorly
	// scaled inputs this can converge too early (tiny ‖A‖) or too late
	// (huge ‖A‖). Scale-sensitive callers should pass WithTol with a value
	// proportional to their matrix norm.
	DefaultTol = 1e-8

	// DefaultSymmetryTol bounds |A[i,j]-A[j,i]| in the symmetry gate that
	// every eigensolver runs before any computation.
	DefaultSymmetryTol = 1e-8

	// DefaultSeed seeds the start-vector source when the caller injects
	// none, keeping results reproducible run-to-run.
	DefaultSeed = 1

	// DefaultSort orders returned eigenpairs by decreasing |eigenvalue|.
	DefaultSort = true

	// DefaultHessenberg enables Hessenberg pre-reduction in the QR
	// algorithm (strongly recommended: reduces per-iteration cost).
	DefaultHessenberg = true
)

// Observer receives per-iteration progress: the iteration index and the
// largest elementwise change of the current estimate. The computational core
// never prints; this callback is the only progress channel.
type Observer func(iter int, delta float64)

// options carries the resolved configuration; fields are unexported and
// public APIs consume ...Option.
type options struct {
	maxIter    int
	tol        float64
	rng        *rand.Rand
	sort       bool
	hessenberg bool
	observer   Observer
}

// Option mutates the resolved options.
type Option func(*options)

// WithMaxIter overrides the iteration budget. Panics if n <= 0
// (programmer error: a non-positive budget can never make progress).
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic("eigen: WithMaxIter requires n > 0")
	}
	return func(o *options) { o.maxIter = n }
}

// WithTol overrides the absolute convergence tolerance. Panics on a
// non-finite or non-positive tolerance (programmer error).
func WithTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("eigen: WithTol requires a finite tol > 0")
	}
	return func(o *options) { o.tol = tol }
}

// WithRand injects the random source used for start vectors. Panics on nil.
// Inject a time-seeded source to reproduce the randomized-restart behavior
// of classical implementations; the default is a fixed seed.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("eigen: WithRand requires a non-nil source")
	}
	return func(o *options) { o.rng = rng }
}

// WithSort toggles ordering of the returned eigenpairs by decreasing
// |eigenvalue|.
func WithSort(sort bool) Option {
	return func(o *options) { o.sort = sort }
}

// WithHessenberg toggles Hessenberg pre-reduction in QRAlgorithm.
func WithHessenberg(hess bool) Option {
	return func(o *options) { o.hessenberg = hess }
}

// WithObserver registers a progress callback. Panics on nil.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic("eigen: WithObserver requires a non-nil callback")
	}
	return func(o *options) { o.observer = fn }
}

// gatherOptions resolves defaults, applies overrides in order, and
// materializes the default random source lazily so every un-configured call
// starts from the same fixed seed.
func gatherOptions(opts ...Option) options {
	o := options{
		maxIter:    DefaultMaxIter,
		tol:        DefaultTol,
		sort:       DefaultSort,
		hessenberg: DefaultHessenberg,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return o
}

// observe reports progress when an observer is registered.
func (o *options) observe(iter int, delta float64) {
	if o.observer != nil {
		o.observer(iter, delta)
	}
}
