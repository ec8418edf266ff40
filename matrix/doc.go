// Package matrix offers a generic row-major dense matrix for real and complex
// linear algebra.
//
// The matrix package provides:
//
//   - Dense[T]: a rows×cols grid stored in one flat row-major slice, where T is
//     any Scalar. Real (float64) and cplx.Complex are the two shipped element
//     types.
//   - Element-wise Add/Sub/Neg, real and element-typed scaling, the matrix
//     product Mul, MulVec, Transpose and ConjugateTranspose.
//   - Identity construction and the IsUnitary predicate (M·Mᴴ = I within a
//     configurable epsilon, DefaultEpsilon = 1e-10).
//
// Every operation allocates its result; operands are never mutated. Errors are
// package sentinels (ErrDimensionMismatch, ErrIndexOutOfBounds, ...) wrapped
// with an operation tag; match them with errors.Is.
//
// Package functions accept the Matrix[T] interface and take a flat-slice fast
// path when operands are *Dense[T]. Real and complex products additionally use
// the hardware multiply-add kernel when the CPU provides one.
package matrix
