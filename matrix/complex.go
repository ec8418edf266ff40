// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/cmplx/cplx"

// Complex is the complex-valued dense matrix.
type Complex = Dense[cplx.Complex]

var _ = assertScalar[cplx.Complex]

// MulVector returns m·v for a complex matrix and a cplx.Vector.
// Errors: ErrNilMatrix; ErrDimensionMismatch when v.Dim() != m.Cols().
// Complexity: O(r*c).
func MulVector(m *Dense[cplx.Complex], v cplx.Vector) (cplx.Vector, error) {
	y, err := MulVec[cplx.Complex](m, v.Components())
	if err != nil {
		return cplx.Vector{}, err
	}

	return cplx.NewVector(y...), nil
}

// FromVectors builds a complex matrix whose rows are the given vectors.
// ErrDimensionMismatch when the vectors differ in length.
func FromVectors(rows ...cplx.Vector) (*Dense[cplx.Complex], error) {
	data := make([][]cplx.Complex, len(rows))
	for i, v := range rows {
		data[i] = v.Components()
	}

	return FromRows(data)
}
