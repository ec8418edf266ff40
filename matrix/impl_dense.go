// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Apply the optional NaN/Inf policy from a single source of truth (options.go).
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Constructors copy their input; Data returns a copy. No caller ever aliases the buffer.
//
// Complexity quicksheet:
//   - New/Zeros/Identity: O(r*c); At/Set: O(1); Clone/Data: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxNew      = "New"      // ctor tag
	ctxFromRows = "FromRows" // ctor tag
	ctxIdentity = "Identity" // ctor tag
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy from options.go).
//
// Dense is not safe for concurrent Set; every arithmetic operation returns a
// new Dense and leaves its operands untouched.
type Dense[T Scalar[T]] struct {
	r, c           int  // row and column counts (>= 0)
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[Real] = (*Dense[Real])(nil)
	_ fmt.Stringer = (*Dense[Real])(nil)
)

// New creates a rows×cols matrix holding a copy of data in row-major order.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits in int;
//     else ErrBadShape.
//   - Stage 2: validate len(data) == rows*cols; else ErrDimensionMismatch.
//   - Stage 3: copy data; apply the NaN/Inf policy if requested.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch, ErrNaNInf (WithValidateNaNInf only).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Scalar[T]](rows, cols int, data []T, opts ...Option) (*Dense[T], error) {
	o := gatherOptions(opts...)
	if !validShape(rows, cols) {
		return nil, matrixErrorf(ctxNew, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("len(data)=%d, want %d×%d: %w", len(data), rows, cols, ErrDimensionMismatch))
	}
	buf := make([]T, len(data))
	copy(buf, data)
	m := &Dense[T]{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}
	if err := m.checkFinite(ctxNew); err != nil {
		return nil, err
	}

	return m, nil
}

// Zeros creates a rows×cols matrix of T's zero value.
// Errors: ErrBadShape on negative dimensions or when rows*cols overflows int.
func Zeros[T Scalar[T]](rows, cols int) (*Dense[T], error) {
	if !validShape(rows, cols) {
		return nil, matrixErrorf("Zeros", ErrBadShape)
	}

	return newDense[T](rows, cols), nil
}

// validShape reports non-negative dimensions whose product fits in int.
func validShape(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}

	return cols == 0 || rows <= math.MaxInt/cols
}

// newDense allocates a zero matrix; callers have validated the shape.
func newDense[T Scalar[T]](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), validateNaNInf: DefaultValidateNaNInf}
}

// FromRows builds a matrix from a slice of equal-length rows.
// An empty outer slice yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch when rows are ragged.
//   - ErrNaNInf (WithValidateNaNInf only).
//
// Complexity: O(r*c).
func FromRows[T Scalar[T]](rows [][]T, opts ...Option) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	flat := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		flat = append(flat, row...)
	}
	m, err := New(r, c, flat, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	return m, nil
}

// FromFloat64s is New for real matrices given plain float64 data.
func FromFloat64s(rows, cols int, data []float64, opts ...Option) (*Dense[Real], error) {
	conv := make([]Real, len(data))
	for i, v := range data {
		conv[i] = Real(v)
	}

	return New(rows, cols, conv, opts...)
}

// Identity returns Iₙ in T: FromFloat(1) on the diagonal, zero elsewhere.
// Identity(0) is the empty 0×0 matrix.
//
// Errors: ErrBadShape when n < 0 or n*n overflows int.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity[T Scalar[T]](n int) (*Dense[T], error) {
	if !validShape(n, n) {
		return nil, matrixErrorf(ctxIdentity, ErrBadShape)
	}
	m := newDense[T](n, n)
	var zero T
	one := zero.FromFloat(1)
	for i := 0; i < n; i++ { // fixed i order
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// The error carries the caller's method tag and coordinates.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrIndexOutOfBounds when row ∉ [0,Rows()) or col ∉ [0,Cols()).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). This is the only mutator of Dense.
// Errors: ErrIndexOutOfBounds; ErrNaNInf when the matrix was built
// WithValidateNaNInf and v is not finite.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy with the same numeric policy.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf, validateNaNInf: m.validateNaNInf}
}

// Data returns a copy of the row-major buffer.
func (m *Dense[T]) Data() []T {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return buf
}

// Equal reports identical shape and exactly equal entries (IEEE ==).
// A nil matrix equals only another nil matrix.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Do calls f for every element in row-major order until f returns false.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one bracketed row per line: "[1, 2]\n[3, 4]\n".
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// checkFinite enforces the NaN/Inf policy over the whole buffer.
func (m *Dense[T]) checkFinite(method string) error {
	if !m.validateNaNInf {
		return nil
	}
	for idx, v := range m.data {
		if !isFinite(v) {
			return denseErrorf(method, idx/m.c, idx%m.c, ErrNaNInf)
		}
	}

	return nil
}

// isFinite reports whether v has no NaN or ±Inf component.
// Magnitude is NaN or +Inf exactly when some component is.
func isFinite[T Scalar[T]](v T) bool { return !isNonFinite(v.Magnitude()) }
