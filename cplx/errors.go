// SPDX-License-Identifier: MIT
// Package cplx: sentinel error set.
// All operations return these sentinels, possibly wrapped with an operation
// tag; callers match them with errors.Is. Nothing panics on user input.

package cplx

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned when text does not match the complex-number grammar.
	ErrParse = errors.New("cplx: malformed complex number")

	// ErrDivisionByZero is returned when dividing by 0+0i or 0.0, or when
	// normalizing a vector whose norm is zero.
	ErrDivisionByZero = errors.New("cplx: division by zero")

	// ErrDimensionMismatch indicates vectors of different lengths were combined.
	ErrDimensionMismatch = errors.New("cplx: dimension mismatch")

	// ErrIndexOutOfBounds indicates a component index outside [0, Dim()).
	ErrIndexOutOfBounds = errors.New("cplx: index out of bounds")

	// ErrNonFinite is returned when a NaN or ±Inf value cannot be represented
	// by the operation: text marshaling, or normalizing a vector whose norm
	// is not finite.
	ErrNonFinite = errors.New("cplx: NaN or Inf encountered")
)

// Operation tags for error wrapping.
const (
	opDiv          = "Div"
	opDivScalar    = "DivScalar"
	opInverse      = "Inverse"
	opParse        = "Parse"
	opVecAdd       = "Vector.Add"
	opVecSub       = "Vector.Sub"
	opVecAt        = "Vector.At"
	opInnerProduct = "Vector.InnerProduct"
	opNormalize    = "Vector.Normalize"
	opMarshalText  = "MarshalText"
)

// cplxErrorf wraps err with an operation tag; err must be non-nil.
func cplxErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
