// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.

package matrix

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike[T Scalar[T]](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDense[T](m.Rows(), m.Cols()), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2).
func IdentityLike[T Scalar[T]](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity[T](m.Rows())
}

// Float64s returns the row-major entries of a real matrix as []float64.
func Float64s(m *Dense[Real]) []float64 {
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = float64(v)
	}

	return out
}

// Promote lifts a real matrix into any element type via FromFloat
// (e.g. Dense[Real] → Dense[cplx.Complex] with zero imaginary parts).
// Complexity: O(r*c).
func Promote[T Scalar[T]](m *Dense[Real]) *Dense[T] {
	res := newDense[T](m.r, m.c)
	var zero T
	for i, v := range m.data {
		res.data[i] = zero.FromFloat(float64(v))
	}

	return res
}
