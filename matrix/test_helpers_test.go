// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep fixtures integer-valued where fast path and fallback must agree bit for bit.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmplx/cplx"
	"github.com/katalvlaran/cmplx/matrix"
)

const tol = 1e-10

// hideReal wraps a real Matrix to hide its concrete type from type assertions,
// forcing the interface fallback path in the code under test.
type hideReal struct{ matrix.Matrix[matrix.Real] }

// hideComplex is hideReal for complex matrices.
type hideComplex struct{ matrix.Matrix[cplx.Complex] }

// c is shorthand for cplx.New.
func c(re, im float64) cplx.Complex { return cplx.New(re, im) }

// mustReal builds a rows×cols real matrix from row-major data or fails the test.
func mustReal(t *testing.T, rows, cols int, data ...float64) *matrix.Dense[matrix.Real] {
	t.Helper()
	m, err := matrix.FromFloat64s(rows, cols, data)
	require.NoError(t, err)

	return m
}

// mustComplex builds a rows×cols complex matrix from row-major data or fails the test.
func mustComplex(t *testing.T, rows, cols int, data ...cplx.Complex) *matrix.Dense[cplx.Complex] {
	t.Helper()
	m, err := matrix.New(rows, cols, data)
	require.NoError(t, err)

	return m
}

// mustIdentity returns Iₙ in T or fails the test.
func mustIdentity[T matrix.Scalar[T]](t *testing.T, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.Identity[T](n)
	require.NoError(t, err)

	return m
}

// mustAt reads m[i,j] or fails the test.
func mustAt[T matrix.Scalar[T]](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// randomComplex fills an r×c complex matrix with entries in [-1,1)² from seed.
func randomComplex(t *testing.T, r, cols int, seed int64) *matrix.Dense[cplx.Complex] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]cplx.Complex, r*cols)
	for i := range data {
		data[i] = c(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return mustComplex(t, r, cols, data...)
}

// randomIntReal fills an r×c real matrix with integers in [-9, 9] from seed.
// Integer entries keep every product and sum exact.
func randomIntReal(t *testing.T, r, cols int, seed int64) *matrix.Dense[matrix.Real] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*cols)
	for i := range data {
		data[i] = float64(rng.Intn(19) - 9)
	}

	return mustReal(t, r, cols, data...)
}
