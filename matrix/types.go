// SPDX-License-Identifier: MIT

// Package matrix: element types and the Matrix interface.
// This file contains ONLY domain-facing types: the Scalar capability set, the
// Real element type, and the Matrix[T] interface consumed by package kernels.
package matrix

import "math"

// Scalar is the capability set a matrix element must provide:
// additive, multiplicative and conjugable, plus a way to lift float64
// constants (0, 1, scale factors) into the element type.
//
// Real and cplx.Complex implement it. The zero value of T must be the
// additive identity.
type Scalar[T any] interface {
	comparable

	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T

	// Conjugate is the identity for real element types.
	Conjugate() T
	// Magnitude is |x|; tolerance checks compare it against epsilon.
	Magnitude() float64
	// Scale multiplies by a real factor.
	Scale(float64) T
	// FromFloat returns x lifted into T; the receiver is ignored.
	FromFloat(x float64) T
}

// Real is a float64 matrix element.
type Real float64

// assertScalar instantiates only for types satisfying Scalar; the package-level
// uses below are compile-time checks.
func assertScalar[T Scalar[T]]() {}

var _ = assertScalar[Real]

// Real arithmetic is plain float64 arithmetic; Conjugate is the identity.

func (x Real) Add(y Real) Real { return x + y }
func (x Real) Sub(y Real) Real { return x - y }
func (x Real) Mul(y Real) Real { return x * y }
func (x Real) Neg() Real { return -x }
func (x Real) Conjugate() Real { return x }
func (x Real) Magnitude() float64 { return math.Abs(float64(x)) }
func (x Real) Scale(s float64) Real { return x * Real(s) }
func (Real) FromFloat(v float64) Real { return Real(v) }

// Matrix represents a two-dimensional array of T with checked access.
// Package kernels accept it and fall back to At/Set when the operand is not
// a *Dense[T].
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Scalar[T]] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v T) error
}
