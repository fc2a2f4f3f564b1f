// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Expose the flat backing slice (Data) so factorization packages can run
//     their hot loops without interface dispatch.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see ops.go): operate on the flat data slice directly.
//   - NaN/±Inf values are stored as-is; numerical degeneracy is allowed to
//     propagate permissively, matching the documented solver contracts.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Data: O(1).
package matrix

import (
	"fmt"
	"math/rand"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxCol    = "Col"    // method tag used in error wrappers
	ctxSetCol = "SetCol" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0 for public constructors)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Inputs:
//   - rows: positive number of rows.
//   - cols: positive number of columns.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows builds a Dense from a rectangular [][]float64 literal.
//
// Implementation:
//   - Stage 1: validate non-empty outer slice and equal row lengths.
//   - Stage 2: copy rows into a fresh flat buffer (input stays untouched).
//
// Errors:
//   - ErrInvalidDimensions on empty input.
//   - ErrDimensionMismatch on ragged rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - This is the test/fixture-friendly constructor; hot paths should
//     allocate with NewDense and fill Data() directly.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// RandomNormal fills a fresh rows×cols Dense with standard-normal draws from rng.
// The random source is injected so callers control reproducibility; this
// package never reads process-global randomness.
//
// Errors:
//   - ErrNilMatrix when rng is nil (reusing the "nil argument" sentinel).
//   - ErrInvalidDimensions on a non-positive shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func RandomNormal(rng *rand.Rand, rows, cols int) (*Dense, error) {
	if rng == nil {
		return nil, fmt.Errorf("RandomNormal: %w", ErrNilMatrix)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = rng.NormFloat64()
	}

	return m, nil
}

// RandomVec returns a length-n vector of standard-normal draws from rng.
// Used as the start vector of the iterative eigensolvers.
//
// Errors:
//   - ErrNilMatrix when rng is nil; ErrInvalidDimensions when n <= 0.
//
// Complexity: Time O(n), Space O(n).
func RandomVec(rng *rand.Rand, n int) ([]float64, error) {
	if rng == nil {
		return nil, fmt.Errorf("RandomVec: %w", ErrNilMatrix)
	}
	if n <= 0 {
		return nil, fmt.Errorf("RandomVec: %w", ErrInvalidDimensions)
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
	}

	return x, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Data exposes the flat row-major backing slice (offset = i*Cols + j).
// Mutations through the slice are visible in the matrix; factorization
// packages rely on this for their hot loops. Treat as borrowed storage:
// never grow it, never retain it past the owning Dense.
// Complexity: O(1).
func (m *Dense) Data() []float64 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a plain sentinel; public methods (At/Set) wrap with coordinates
// and the method tag. Keep unexported to avoid accidental panics at the
// public surface.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with context.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// NaN/±Inf values are accepted: degeneracy propagates permissively by the
// package contract instead of being rejected at the storage layer.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Col copies column j into a fresh []float64 of length Rows().
//
// Errors:
//   - ErrOutOfRange when j is invalid.
//
// Complexity: Time O(r), Space O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetCol writes x into column j; len(x) must equal Rows().
// Used by the eigensolvers to stack eigenvectors column-wise.
//
// Errors:
//   - ErrOutOfRange on an invalid column index.
//   - ErrDimensionMismatch on a length mismatch.
//
// Complexity: Time O(r), Space O(1).
func (m *Dense) SetCol(j int, x []float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if len(x) != m.r {
		return denseErrorf(ctxSetCol, len(x), j, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = x[i]
	}

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Independence: mutations on the copy do not affect the original.
// The returned dynamic type is *Dense.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
