// SPDX-License-Identifier: MIT
// Package matrix: Dense method facades.
//
// Purpose:
//   - Expose the package kernels as methods so call sites read a.Mul(b).
//   - Avoid any logic duplication: each method delegates to the canonical kernel.
//
// Every method allocates its result; the receiver and arguments are never mutated.

package matrix

// Add returns m + o. ErrDimensionMismatch on shape mismatch.
func (m *Dense[T]) Add(o *Dense[T]) (*Dense[T], error) { return Add[T](m, o) }

// Sub returns m - o. ErrDimensionMismatch on shape mismatch.
func (m *Dense[T]) Sub(o *Dense[T]) (*Dense[T], error) { return Sub[T](m, o) }

// Neg returns -m.
func (m *Dense[T]) Neg() *Dense[T] {
	res, _ := Neg[T](m) // only fails on nil

	return res
}

// Scale returns alpha·m for a real alpha.
func (m *Dense[T]) Scale(alpha float64) *Dense[T] {
	res, _ := Scale[T](m, alpha)

	return res
}

// ScaleBy returns alpha·m for an element-typed alpha.
func (m *Dense[T]) ScaleBy(alpha T) *Dense[T] {
	res, _ := ScaleBy[T](m, alpha)

	return res
}

// Mul returns the matrix product m·o.
// ErrDimensionMismatch when m.Cols() != o.Rows().
func (m *Dense[T]) Mul(o *Dense[T]) (*Dense[T], error) { return Mul[T](m, o) }

// MulVec returns m·x. ErrDimensionMismatch when len(x) != m.Cols().
func (m *Dense[T]) MulVec(x []T) ([]T, error) { return MulVec[T](m, x) }

// Transpose returns mᵀ.
func (m *Dense[T]) Transpose() *Dense[T] {
	res, _ := Transpose[T](m)

	return res
}

// ConjugateTranspose returns mᴴ.
func (m *Dense[T]) ConjugateTranspose() *Dense[T] {
	res, _ := ConjugateTranspose[T](m)

	return res
}

// IsUnitary reports m·mᴴ = I within eps; false for non-square m.
func (m *Dense[T]) IsUnitary(opts ...Option) bool { return IsUnitary[T](m, opts...) }

// ApproxEqual reports equal shape and |m[i,j] - o[i,j]| <= eps everywhere.
func (m *Dense[T]) ApproxEqual(o *Dense[T], opts ...Option) bool {
	ok, err := AllClose[T](m, o, opts...)

	return err == nil && ok
}
