// Package cplx provides complex scalars, angles and complex vectors.
//
// The package provides:
//
//   - Complex: an immutable re + im·i value with field arithmetic, polar
//     conversion, a text parser ("2+3i", "-i", "1.5e-3-2i") and
//     encoding.TextMarshaler support.
//   - Angle: a degree- or radian-tagged angle used by polar construction.
//   - Vector: a fixed-length ordered sequence of Complex with element-wise
//     arithmetic, scaling, a conjugate-linear inner product, norm and
//     normalization.
//
// All operations return new values; nothing aliases caller storage.
// Division by zero is signalled with ErrDivisionByZero rather than producing
// IEEE Inf/NaN components.
//
// Complex satisfies matrix.Scalar, so matrix.Dense[cplx.Complex] is the
// complex-valued matrix type.
package cplx
