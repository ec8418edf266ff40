// SPDX-License-Identifier: MIT

// Package cplx - Complex scalar and its arithmetic.
//
// Purpose:
//   - Provide an immutable rectangular complex value with explicit, named
//     binary operations (Add/Sub/Mul/Div) instead of operator overloading.
//   - Satisfy matrix.Scalar so generic dense matrices can hold complex entries.
//
// Numeric policy:
//   - Non-finite components follow IEEE rules everywhere except division:
//     dividing by exactly 0+0i (or 0.0) returns ErrDivisionByZero.
//   - Div uses Smith's scaling to avoid spurious overflow in |b|².

package cplx

import (
	"math"
	"strconv"
)

// Complex is the value re + im·i.
// The zero value is 0+0i and is ready to use.
type Complex struct {
	Re float64 // real part
	Im float64 // imaginary part
}

// New returns re + im·i. Always succeeds.
func New(re, im float64) Complex { return Complex{Re: re, Im: im} }

// FromPolar returns magnitude·(cos θ + i·sin θ) for θ = angle in radians.
// Complexity: O(1).
func FromPolar(magnitude, angle float64) Complex {
	sin, cos := math.Sincos(angle)

	return Complex{Re: magnitude * cos, Im: magnitude * sin}
}

// FromPolarAngle is FromPolar with a unit-tagged angle.
func FromPolarAngle(magnitude float64, angle Angle) Complex {
	return FromPolar(magnitude, angle.Radians())
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(c complex128) Complex { return Complex{Re: real(c), Im: imag(c)} }

// Complex128 converts to the builtin complex128.
func (z Complex) Complex128() complex128 { return complex(z.Re, z.Im) }

// FromFloat returns x + 0i. The receiver is ignored; generic code uses it to
// lift real constants (0, 1) into the element type.
func (Complex) FromFloat(x float64) Complex { return Complex{Re: x} }

// Add returns z + w.
func (z Complex) Add(w Complex) Complex { return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im} }

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex { return Complex{Re: z.Re - w.Re, Im: z.Im - w.Im} }

// Mul returns z·w = (ac - bd) + (ad + bc)i.
// The float64 conversions forbid the compiler from fusing the products, so
// z.Mul(w) == w.Mul(z) bit for bit on every architecture.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: float64(z.Re*w.Re) - float64(z.Im*w.Im),
		Im: float64(z.Re*w.Im) + float64(z.Im*w.Re),
	}
}

// Div returns z / w.
//
// Errors:
//   - ErrDivisionByZero when w is exactly 0+0i.
//
// Notes:
//   - Smith's algorithm: scale by the larger of |w.Re|, |w.Im| so the
//     denominator never squares a large component.
func (z Complex) Div(w Complex) (Complex, error) {
	if w.IsZero() {
		return Complex{}, cplxErrorf(opDiv, ErrDivisionByZero)
	}
	if math.Abs(w.Re) >= math.Abs(w.Im) {
		r := w.Im / w.Re
		d := w.Re + w.Im*r

		return Complex{Re: (z.Re + z.Im*r) / d, Im: (z.Im - z.Re*r) / d}, nil
	}
	r := w.Re / w.Im
	d := w.Im + w.Re*r

	return Complex{Re: (z.Re*r + z.Im) / d, Im: (z.Im*r - z.Re) / d}, nil
}

// DivScalar returns z / s for a real s. ErrDivisionByZero when s == 0.
func (z Complex) DivScalar(s float64) (Complex, error) {
	if s == 0 {
		return Complex{}, cplxErrorf(opDivScalar, ErrDivisionByZero)
	}

	return Complex{Re: z.Re / s, Im: z.Im / s}, nil
}

// Inverse returns 1 / z. ErrDivisionByZero when z is 0+0i.
func (z Complex) Inverse() (Complex, error) {
	inv, err := Complex{Re: 1}.Div(z)
	if err != nil {
		return Complex{}, cplxErrorf(opInverse, ErrDivisionByZero)
	}

	return inv, nil
}

// Neg returns -z.
func (z Complex) Neg() Complex { return Complex{Re: -z.Re, Im: -z.Im} }

// Scale returns s·z for a real s.
func (z Complex) Scale(s float64) Complex { return Complex{Re: z.Re * s, Im: z.Im * s} }

// Conjugate returns re - im·i.
func (z Complex) Conjugate() Complex { return Complex{Re: z.Re, Im: -z.Im} }

// Magnitude returns |z| = sqrt(re² + im²) without intermediate overflow.
func (z Complex) Magnitude() float64 { return math.Hypot(z.Re, z.Im) }

// MagnitudeSquared returns re² + im².
func (z Complex) MagnitudeSquared() float64 { return z.Re*z.Re + z.Im*z.Im }

// Argument returns atan2(im, re) in (-π, π].
func (z Complex) Argument() float64 { return math.Atan2(z.Im, z.Re) }

// Angle returns the argument as a radian Angle.
func (z Complex) Angle() Angle { return Radian(z.Argument()) }

// IsFinite reports whether neither component is NaN or ±Inf.
func (z Complex) IsFinite() bool {
	return !math.IsNaN(z.Re) && !math.IsInf(z.Re, 0) && !math.IsNaN(z.Im) && !math.IsInf(z.Im, 0)
}

// IsZero reports whether both components are exactly zero (±0).
func (z Complex) IsZero() bool { return z.Re == 0 && z.Im == 0 }

// Equal reports exact component-wise equality (IEEE ==, so NaN != NaN).
func (z Complex) Equal(w Complex) bool { return z == w }

// ApproxEqual reports |z - w| <= eps.
func (z Complex) ApproxEqual(w Complex, eps float64) bool {
	return z.Sub(w).Magnitude() <= eps
}

// String formats z as "a+bi", "a-bi" or, when im == 0, as "a".
// Finite components use the shortest representation that round-trips
// through Parse; NaN and ±Inf print as FormatFloat spells them.
func (z Complex) String() string {
	re := strconv.FormatFloat(z.Re, 'g', -1, 64)
	if z.Im == 0 {
		return re
	}
	sign := "+"
	if z.Im < 0 {
		sign = "" // FormatFloat already emits '-'
	}

	return re + sign + strconv.FormatFloat(z.Im, 'g', -1, 64) + "i"
}

// MarshalText implements encoding.TextMarshaler using String.
// Errors: ErrNonFinite when a component is NaN or ±Inf, since Parse
// rejects those and the text could not be read back.
func (z Complex) MarshalText() ([]byte, error) {
	if !z.IsFinite() {
		return nil, cplxErrorf(opMarshalText, ErrNonFinite)
	}

	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (z *Complex) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = v

	return nil
}
