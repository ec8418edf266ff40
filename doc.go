// Package cmplx is a small numerics toolkit: complex scalars, complex
// vectors and dense real/complex matrices, all in pure Go.
//
// 🚀 What is inside?
//
//	• cplx/   : Complex (arithmetic, polar form, parsing), Angle, Vector
//	            (inner product, norm, normalization)
//	• matrix/ : generic row-major Dense[T] over Real or cplx.Complex:
//	            Add, Sub, Mul, MulVec, Transpose, ConjugateTranspose, IsUnitary
//
// ✨ Guarantees
//
//   - No panics on user input: every failure is a sentinel error matched with errors.Is.
//   - Values are immutable from the caller's side; constructors copy their input.
//   - Fixed loop orders, so results are reproducible run to run.
//   - Products use hardware FMA when the CPU has it (golang.org/x/sys/cpu).
//
// Quick example:
//
//	z, _ := cplx.Parse("3+4i")
//	z.Magnitude()              // 5
//	u, _ := matrix.New(2, 2, []cplx.Complex{...})
//	u.IsUnitary()              // within 1e-10
//
// Out of scope: sparse storage, decompositions (LU, QR, eigen), SIMD and GPU kernels.
//
//	go get github.com/katalvlaran/cmplx
package cmplx
