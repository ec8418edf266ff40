// SPDX-License-Identifier: MIT

// Package kernel holds the scalar multiply-accumulate micro-kernels shared by
// cplx and matrix. They operate on raw float64 pairs so both packages can call
// them without an import cycle.
//
// Dispatch:
//   - When the CPU fuses multiply-add in hardware, math.FMA is used (one
//     rounding per step).
//   - Otherwise the plain expression a*b + c is used.
package kernel

import (
	"math"

	"github.com/katalvlaran/cmplx/internal/cpu"
)

// fused selects the math.FMA path. Read-only after init except in tests.
var fused = cpu.Detect().HasFMA

// Fused reports whether hardware FMA is in use.
func Fused() bool { return fused }

// MulAdd returns a*b + c.
func MulAdd(a, b, c float64) float64 {
	if fused {
		return math.FMA(a, b, c)
	}

	return a*b + c
}

// CMulAdd returns (cr + i·ci) + (ar + i·ai)(br + i·bi).
// Complexity: O(1), four multiply-adds.
func CMulAdd(ar, ai, br, bi, cr, ci float64) (re, im float64) {
	re = MulAdd(ar, br, MulAdd(-ai, bi, cr))
	im = MulAdd(ar, bi, MulAdd(ai, br, ci))

	return re, im
}

// CMulConjAdd returns (cr + i·ci) + (ar + i·ai)·conj(br + i·bi).
// This is the step of a conjugate-linear inner product.
func CMulConjAdd(ar, ai, br, bi, cr, ci float64) (re, im float64) {
	return CMulAdd(ar, ai, br, -bi, cr, ci)
}

// AbsSquaredAdd returns acc + re² + im².
func AbsSquaredAdd(re, im, acc float64) float64 {
	return MulAdd(re, re, MulAdd(im, im, acc))
}
