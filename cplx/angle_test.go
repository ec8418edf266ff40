package cplx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmplx/cplx"
)

func TestAngle_Conversion(t *testing.T) {
	assert.InDelta(t, math.Pi/2, cplx.Degree(90).Radians(), tol)
	assert.InDelta(t, 180.0, cplx.Radian(math.Pi).Degrees(), tol)

	// Same-unit reads return the stored value untouched.
	require.Equal(t, 90.0, cplx.Degree(90).Degrees())
	require.Equal(t, 1.25, cplx.Radian(1.25).Radians())
}

func TestAngle_Retag(t *testing.T) {
	r := cplx.Degree(90).AsRadians()
	require.Equal(t, cplx.Radians, r.Unit())
	assert.InDelta(t, math.Pi/2, r.Value(), tol)

	d := cplx.Radian(math.Pi).AsDegrees()
	require.Equal(t, cplx.Degrees, d.Unit())
	assert.InDelta(t, 180.0, d.Value(), tol)
}

func TestAngle_RoundTrip(t *testing.T) {
	back := cplx.Radian(cplx.Degree(45).Radians()).Degrees()
	assert.InDelta(t, 45.0, back, tol)
}

func TestAngle_Normalize(t *testing.T) {
	cases := []struct {
		in   cplx.Angle
		want float64
	}{
		{cplx.Degree(400), 40},
		{cplx.Degree(-45), 315},
		{cplx.Degree(360), 0},
		{cplx.Degree(0), 0},
		{cplx.Radian(-math.Pi / 2), 270},
	}
	for _, tc := range cases {
		got := tc.in.Normalize()
		require.Equal(t, cplx.Degrees, got.Unit())
		assert.InDelta(t, tc.want, got.Degrees(), 1e-9, "normalize %s", tc.in)
		assert.GreaterOrEqual(t, got.Degrees(), 0.0)
		assert.Less(t, got.Degrees(), 360.0)
	}
}

func TestAngle_String(t *testing.T) {
	assert.Equal(t, "90°", cplx.Degree(90).String())
	assert.Equal(t, "1.5rad", cplx.Radian(1.5).String())
	assert.Equal(t, "0rad", cplx.Angle{}.String())
}
