// Package linalg is a from-scratch playground for dense numerical linear
// algebra — factorizations, solvers and eigenvalue iterations built on one
// tiny matrix core, with every algorithm written out in the open.
//
// 🚀 What is linalg?
//
//	A pure-Go library that brings together:
//		• Core primitives: dense row-major matrices, validated ops, norms
//		• Factorizations: LU (no / partial / full pivoting), Householder QR
//		• Linear systems: LU-backed direct solves, gradient descent
//		• Eigenpairs: power, inverse & Rayleigh-quotient iteration,
//		  deflation, Hessenberg reduction, the shifted QR algorithm
//
// ✨ Why choose linalg?
//
//   - Transparent – each method is the textbook algorithm, not a binding
//   - Rock-solid guarantees – explicit sentinel errors, no silent panics
//   - Deterministic – randomized starts come from fixed-seed sources
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/ — Dense type, arithmetic, norms, validators & structure helpers
//	lu/     — LU factorization with three pivoting strategies + solves
//	qr/     — Householder QR factorization
//	solver/ — one-shot Ax=b entry points (LU-backed, gradient descent)
//	eigen/  — single- and all-eigenpair iterative methods
//
// Quick example — every eigenpair of a symmetric matrix:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{
//		{2, 1},
//		{1, 2},
//	})
//	pairs, err := eigen.Eig(a)
//
// Dive into the per-package docs for the full contracts, complexity notes
// and edge-case behavior.
//
//	go get github.com/katalvlaran/linalg
package linalg
