// SPDX-License-Identifier: MIT

package cplx

import (
	"math"
	"strconv"
)

// Unit tags the unit an Angle was created in.
type Unit uint8

const (
	// Radians is the unit used by FromPolar and Argument.
	Radians Unit = iota
	// Degrees divides the turn into 360.
	Degrees
)

const fullTurnDegrees = 360.0

// Angle is a unit-tagged angle. Conversions are exact up to one rounding.
// The zero value is 0 radians.
type Angle struct {
	value float64
	unit  Unit
}

// Degree returns an angle of v degrees.
func Degree(v float64) Angle { return Angle{value: v, unit: Degrees} }

// Radian returns an angle of v radians.
func Radian(v float64) Angle { return Angle{value: v, unit: Radians} }

// Unit returns the unit the angle is tagged with.
func (a Angle) Unit() Unit { return a.unit }

// Value returns the stored value in the tagged unit.
func (a Angle) Value() float64 { return a.value }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	if a.unit == Degrees {
		return a.value
	}

	return a.value * 180 / math.Pi
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	if a.unit == Radians {
		return a.value
	}

	return a.value * math.Pi / 180
}

// AsDegrees re-tags the angle in degrees.
func (a Angle) AsDegrees() Angle { return Degree(a.Degrees()) }

// AsRadians re-tags the angle in radians.
func (a Angle) AsRadians() Angle { return Radian(a.Radians()) }

// Normalize returns the equivalent angle in [0, 360) degrees.
func (a Angle) Normalize() Angle {
	d := math.Mod(a.Degrees(), fullTurnDegrees)
	if d < 0 {
		d += fullTurnDegrees
	}
	// -tiny + 360 rounds to 360.
	if d >= fullTurnDegrees {
		d = 0
	}

	return Degree(d)
}

// String formats as "90°" or "1.5707963267948966rad".
func (a Angle) String() string {
	v := strconv.FormatFloat(a.value, 'g', -1, 64)
	if a.unit == Degrees {
		return v + "°"
	}

	return v + "rad"
}
