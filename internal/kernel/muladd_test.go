package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// withFused runs fn with the dispatch flag forced, restoring it afterwards.
func withFused(t *testing.T, v bool, fn func()) {
	t.Helper()
	prev := fused
	fused = v
	defer func() { fused = prev }()
	fn()
}

func TestMulAdd_BothPaths(t *testing.T) {
	for _, f := range []bool{false, true} {
		withFused(t, f, func() {
			require.Equal(t, f, Fused())
			require.Equal(t, 7.0, MulAdd(2, 3, 1))
			require.Equal(t, -5.0, MulAdd(-2, 3, 1))
		})
	}
}

func TestCMulAdd(t *testing.T) {
	for _, f := range []bool{false, true} {
		withFused(t, f, func() {
			// (1+2i)(3+4i) = -5+10i; plus (1+1i)
			re, im := CMulAdd(1, 2, 3, 4, 1, 1)
			require.InDelta(t, -4.0, re, 1e-12)
			require.InDelta(t, 11.0, im, 1e-12)
		})
	}
}

func TestCMulConjAdd(t *testing.T) {
	// (1+2i)·conj(3+4i) = (1+2i)(3-4i) = 11+2i
	re, im := CMulConjAdd(1, 2, 3, 4, 0, 0)
	require.InDelta(t, 11.0, re, 1e-12)
	require.InDelta(t, 2.0, im, 1e-12)
}

func TestAbsSquaredAdd(t *testing.T) {
	require.InDelta(t, 26.0, AbsSquaredAdd(3, 4, 1), 1e-12)
}
