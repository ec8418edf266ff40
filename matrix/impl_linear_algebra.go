// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix[T] implementation,
// including element-wise addition, subtraction, negation, scaling, matrix
// multiplication, transpose and conjugate transpose. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical linear-algebra kernels shared by package functions and Dense methods.
//   - Operation tags for uniform error reporting.
//
// Determinism:
//   - Fixed loop orders: flat 0..n-1 for element-wise *Dense paths, i→k→j for
//     the *Dense product, i→j→k for the interface fallback.
//
// Notes:
//   - Real and complex products run on the shared multiply-add kernel, which
//     fuses in hardware when the CPU supports it. Other element types use
//     T.Add/T.Mul.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/cmplx/cplx"
	"github.com/katalvlaran/cmplx/internal/kernel"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd                = "Add"
	opSub                = "Sub"
	opNeg                = "Neg"
	opMul                = "Mul"
	opMulVec             = "MulVec"
	opTranspose          = "Transpose"
	opConjugateTranspose = "ConjugateTranspose"
	opScale              = "Scale"
	opAllClose           = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zipWith computes out[i,j] = f(a[i,j], b[i,j]) for same-shape operands.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func zipWith[T Scalar[T]](a, b Matrix[T], f func(x, y T) T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDense[T](rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv T
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// mapEach computes out[i,j] = f(m[i,j]) into a fresh Dense.
// Fast path on *Dense; At fallback otherwise.
func mapEach[T Scalar[T]](m Matrix[T], f func(x T) T, opTag string) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDense[T](rows, cols)

	if dm, ok := m.(*Dense[T]); ok {
		for idx, v := range dm.data {
			res.data[idx] = f(v)
		}

		return res, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = f(v)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Inputs are never mutated; result is always a freshly allocated Dense.
func Add[T Scalar[T]](a, b Matrix[T]) (*Dense[T], error) {
	return zipWith(a, b, func(x, y T) T { return x.Add(y) }, opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub[T Scalar[T]](a, b Matrix[T]) (*Dense[T], error) {
	return zipWith(a, b, func(x, y T) T { return x.Sub(y) }, opSub)
}

// Neg returns -M.
func Neg[T Scalar[T]](m Matrix[T]) (*Dense[T], error) {
	return mapEach(m, func(x T) T { return x.Neg() }, opNeg)
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape; NaN/Inf propagate.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T Scalar[T]](m Matrix[T], alpha float64) (*Dense[T], error) {
	return mapEach(m, func(x T) T { return x.Scale(alpha) }, opScale)
}

// ScaleBy returns alpha·M for an element-typed alpha (e.g. a complex phase).
func ScaleBy[T Scalar[T]](m Matrix[T], alpha T) (*Dense[T], error) {
	return mapEach(m, func(x T) T { return alpha.Mul(x) }, opScale)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j over the flat buffers with the
//     element-specific kernel; otherwise i→j→k through At.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c); C[i,j] = Σₖ A[i,k]·B[k,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep both operands as *Dense to unlock the flat path.
func Mul[T Scalar[T]](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense[T](aRows, bCols)

	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			mulDense(res, da, db)

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	var av, bv T
	var err error
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			var sum T
			for k := 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum = sum.Add(av.Mul(bv))
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// mulDense dispatches the flat product to the element-specific kernel.
// res is zero-filled with shape a.r × b.c.
func mulDense[T Scalar[T]](res, a, b *Dense[T]) {
	switch r := any(res).(type) {
	case *Dense[Real]:
		mulDenseReal(r, any(a).(*Dense[Real]), any(b).(*Dense[Real]))
	case *Dense[cplx.Complex]:
		mulDenseComplex(r, any(a).(*Dense[cplx.Complex]), any(b).(*Dense[cplx.Complex]))
	default:
		mulDenseGeneric(res, a, b)
	}
}

// mulDenseGeneric: i→k→j accumulation with T arithmetic.
func mulDenseGeneric[T Scalar[T]](res, a, b *Dense[T]) {
	n, c := a.c, b.c
	for i := 0; i < a.r; i++ {
		rowA, rowR := i*n, i*c
		for k := 0; k < n; k++ {
			av := a.data[rowA+k]
			rowB := k * c
			for j := 0; j < c; j++ {
				res.data[rowR+j] = res.data[rowR+j].Add(av.Mul(b.data[rowB+j]))
			}
		}
	}
}

// mulDenseReal: i→k→j accumulation on the multiply-add kernel.
func mulDenseReal(res, a, b *Dense[Real]) {
	n, c := a.c, b.c
	for i := 0; i < a.r; i++ {
		rowA, rowR := i*n, i*c
		for k := 0; k < n; k++ {
			av := float64(a.data[rowA+k])
			rowB := k * c
			for j := 0; j < c; j++ {
				res.data[rowR+j] = Real(kernel.MulAdd(av, float64(b.data[rowB+j]), float64(res.data[rowR+j])))
			}
		}
	}
}

// mulDenseComplex: i→k→j accumulation on the complex multiply-add kernel.
func mulDenseComplex(res, a, b *Dense[cplx.Complex]) {
	n, c := a.c, b.c
	for i := 0; i < a.r; i++ {
		rowA, rowR := i*n, i*c
		for k := 0; k < n; k++ {
			av := a.data[rowA+k]
			rowB := k * c
			for j := 0; j < c; j++ {
				bv, acc := b.data[rowB+j], res.data[rowR+j]
				re, im := kernel.CMulAdd(av.Re, av.Im, bv.Re, bv.Im, acc.Re, acc.Im)
				res.data[rowR+j] = cplx.Complex{Re: re, Im: im}
			}
		}
	}
}

// MulVec returns y = M·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != M.Cols().
// Complexity: O(r*c).
func MulVec[T Scalar[T]](m Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	// x as a read-only column; Mul never writes its operands.
	col := &Dense[T]{r: len(x), c: 1, data: x}
	y, err := Mul[T](m, col)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return y.data, nil
}

// transposeWith writes f(m[i,j]) to res[j,i].
func transposeWith[T Scalar[T]](m Matrix[T], f func(T) T, opTag string) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDense[T](cols, rows) // dims flipped

	// Fast-path: data[i*cols + j] → res.data[j*rows + i]
	if dm, ok := m.(*Dense[T]); ok {
		for i := 0; i < rows; i++ {
			baseSrc := i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = f(dm.data[baseSrc+j])
			}
		}

		return res, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[j*rows+i] = f(v)
		}
	}

	return res, nil
}

// Transpose returns Mᵀ (cols × rows). Errors: ErrNilMatrix.
func Transpose[T Scalar[T]](m Matrix[T]) (*Dense[T], error) {
	return transposeWith(m, func(v T) T { return v }, opTranspose)
}

// ConjugateTranspose returns Mᴴ: the cols × rows matrix with
// result[j,i] = conj(M[i,j]). For Real it equals Transpose.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ConjugateTranspose[T Scalar[T]](m Matrix[T]) (*Dense[T], error) {
	return transposeWith(m, func(v T) T { return v.Conjugate() }, opConjugateTranspose)
}

// AllClose reports whether a and b have the same shape and every pair of
// entries satisfies |a[i,j] - b[i,j]| <= eps (WithEpsilon, default DefaultEpsilon).
// A shape mismatch is (false, nil); only nil operands and access failures error.
//
// Complexity: O(r*c).
func AllClose[T Scalar[T]](a, b Matrix[T], opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}
	eps := gatherOptions(opts...).eps
	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !(av.Sub(bv).Magnitude() <= eps) { // NaN compares false → not close
				return false, nil
			}
		}
	}

	return true, nil
}

// IsUnitary reports whether M·Mᴴ equals the identity within eps
// (WithEpsilon, default DefaultEpsilon = 1e-10), comparing |P[i,j] - δᵢⱼ|.
//
// Behavior highlights:
//   - Never fails: nil or non-square input is simply not unitary.
//   - For Real elements this is the orthogonality test M·Mᵀ = I.
//   - The empty 0×0 matrix is unitary.
//
// Complexity: O(n³) time, O(n²) space.
func IsUnitary[T Scalar[T]](m Matrix[T], opts ...Option) bool {
	if ValidateNotNil(m) != nil || ValidateSquare(m) != nil {
		return false
	}
	mh, err := ConjugateTranspose(m)
	if err != nil {
		return false
	}
	p, err := Mul[T](m, mh)
	if err != nil {
		return false
	}
	id, err := Identity[T](m.Rows())
	if err != nil {
		return false
	}
	ok, err := AllClose[T](p, id, opts...)

	return err == nil && ok
}
