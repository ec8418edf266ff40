// SPDX-License-Identifier: MIT

// Package cplx - Vector: fixed-length ordered sequence of Complex.
//
// Purpose:
//   - Element-wise Add/Sub, real and complex scaling, conjugate-linear inner
//     product, Euclidean norm and normalization.
//
// Contracts:
//   - Length is fixed at construction; binary operations require equal length
//     and return ErrDimensionMismatch otherwise.
//   - Every operation allocates its result; receivers are never mutated and
//     constructors copy their input.
//   - Accumulations (InnerProduct, NormSquared) use the shared multiply-add
//     kernel and a fixed 0..n-1 order, so results are deterministic per CPU.

package cplx

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/cmplx/internal/kernel"
)

// Vector is an immutable ordered sequence of Complex.
// The zero value is the empty vector.
type Vector struct {
	components []Complex
}

// NewVector returns a vector holding a copy of elems.
func NewVector(elems ...Complex) Vector {
	out := make([]Complex, len(elems))
	copy(out, elems)

	return Vector{components: out}
}

// Zeros returns the n-dimensional zero vector; n < 0 yields the empty vector.
func Zeros(n int) Vector {
	if n < 0 {
		n = 0
	}

	return Vector{components: make([]Complex, n)}
}

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v.components) }

// At returns component i.
// Errors: ErrIndexOutOfBounds when i is outside [0, Dim()).
func (v Vector) At(i int) (Complex, error) {
	if i < 0 || i >= len(v.components) {
		return Complex{}, fmt.Errorf("%s(%d): %w", opVecAt, i, ErrIndexOutOfBounds)
	}

	return v.components[i], nil
}

// Components returns a copy of the components in index order.
func (v Vector) Components() []Complex {
	out := make([]Complex, len(v.components))
	copy(out, v.components)

	return out
}

// IsZero reports whether every component is exactly 0+0i.
// The empty vector is zero.
func (v Vector) IsZero() bool {
	for _, c := range v.components {
		if !c.IsZero() {
			return false
		}
	}

	return true
}

// Equal reports exact component-wise equality and equal length.
func (v Vector) Equal(w Vector) bool {
	if len(v.components) != len(w.components) {
		return false
	}
	for i := range v.components {
		if v.components[i] != w.components[i] {
			return false
		}
	}

	return true
}

// combine applies op pairwise; shared by Add and Sub.
func (v Vector) combine(w Vector, tag string, op func(a, b Complex) Complex) (Vector, error) {
	if len(v.components) != len(w.components) {
		return Vector{}, fmt.Errorf("%s: %d vs %d: %w", tag, len(v.components), len(w.components), ErrDimensionMismatch)
	}
	out := make([]Complex, len(v.components))
	for i := range v.components {
		out[i] = op(v.components[i], w.components[i])
	}

	return Vector{components: out}, nil
}

// Add returns v + w element-wise. ErrDimensionMismatch on length mismatch.
// Complexity: O(n).
func (v Vector) Add(w Vector) (Vector, error) { return v.combine(w, opVecAdd, Complex.Add) }

// Sub returns v - w element-wise. ErrDimensionMismatch on length mismatch.
func (v Vector) Sub(w Vector) (Vector, error) { return v.combine(w, opVecSub, Complex.Sub) }

// mapEach applies f to each component.
func (v Vector) mapEach(f func(Complex) Complex) Vector {
	out := make([]Complex, len(v.components))
	for i, c := range v.components {
		out[i] = f(c)
	}

	return Vector{components: out}
}

// Scale returns s·v for a real s.
func (v Vector) Scale(s float64) Vector {
	return v.mapEach(func(c Complex) Complex { return c.Scale(s) })
}

// ScaleComplex returns s·v for a complex s.
func (v Vector) ScaleComplex(s Complex) Vector {
	return v.mapEach(func(c Complex) Complex { return c.Mul(s) })
}

// Neg returns -v.
func (v Vector) Neg() Vector { return v.mapEach(Complex.Neg) }

// Conjugate returns the component-wise conjugate.
func (v Vector) Conjugate() Vector { return v.mapEach(Complex.Conjugate) }

// InnerProduct returns Σ v[i]·conj(w[i]).
// The product is linear in v and conjugate-linear in w, so
// v.InnerProduct(v) is real and equals NormSquared up to rounding.
//
// Errors: ErrDimensionMismatch on length mismatch.
// Complexity: O(n).
func (v Vector) InnerProduct(w Vector) (Complex, error) {
	if len(v.components) != len(w.components) {
		return Complex{}, fmt.Errorf("%s: %d vs %d: %w", opInnerProduct, len(v.components), len(w.components), ErrDimensionMismatch)
	}
	var re, im float64
	for i, a := range v.components {
		b := w.components[i]
		re, im = kernel.CMulConjAdd(a.Re, a.Im, b.Re, b.Im, re, im)
	}

	return Complex{Re: re, Im: im}, nil
}

// NormSquared returns Σ |v[i]|².
func (v Vector) NormSquared() float64 {
	acc := 0.0
	for _, c := range v.components {
		acc = kernel.AbsSquaredAdd(c.Re, c.Im, acc)
	}

	return acc
}

// Norm returns the Euclidean norm sqrt(Σ |v[i]|²).
//
// Implementation:
//   - Running scale/sum-of-squares over every real and imaginary part, so
//     the result overflows only when the norm itself exceeds MaxFloat64
//     (same guarantee as Complex.Magnitude).
//   - Any ±Inf part gives +Inf; otherwise NaN propagates.
//
// Complexity: O(n).
func (v Vector) Norm() float64 {
	scale, ssq := 0.0, 1.0
	for _, c := range v.components {
		for _, x := range [2]float64{c.Re, c.Im} {
			if x == 0 {
				continue
			}
			ax := math.Abs(x)
			if math.IsInf(ax, 1) {
				return ax
			}
			if scale < ax {
				r := scale / ax
				ssq = kernel.MulAdd(ssq*r, r, 1)
				scale = ax
			} else {
				r := ax / scale
				ssq = kernel.MulAdd(r, r, ssq)
			}
		}
	}

	return scale * math.Sqrt(ssq)
}

// Normalize returns v / Norm().
// Errors: ErrDivisionByZero when the norm is zero (including the empty vector);
// ErrNonFinite when the norm is NaN or +Inf.
func (v Vector) Normalize() (Vector, error) {
	n := v.Norm()
	if n == 0 {
		return Vector{}, fmt.Errorf("%s: %w", opNormalize, ErrDivisionByZero)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Vector{}, fmt.Errorf("%s: %w", opNormalize, ErrNonFinite)
	}

	return v.mapEach(func(c Complex) Complex { return Complex{Re: c.Re / n, Im: c.Im / n} }), nil
}

// String formats as "[1+2i, 3, 0-1i]".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range v.components {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')

	return b.String()
}
