package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmplx/cplx"
	"github.com/katalvlaran/cmplx/matrix"
)

func TestNew_ShapeAndAccess(t *testing.T) {
	m := mustComplex(t, 2, 2, c(1, 0), c(2, 0), c(3, 0), c(4, 0))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	r, cols := m.Shape()
	require.Equal(t, [2]int{2, 2}, [2]int{r, cols})
	require.True(t, m.IsSquare())
	require.Equal(t, c(1, 0), mustAt(t, m, 0, 0))
	require.Equal(t, c(2, 0), mustAt(t, m, 0, 1))
	require.Equal(t, c(4, 0), mustAt(t, m, 1, 1))
}

func TestNew_Errors(t *testing.T) {
	_, err := matrix.FromFloat64s(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.New[matrix.Real](-1, 2, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Zeros[matrix.Real](2, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Identity[cplx.Complex](-3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestAt_OutOfBounds(t *testing.T) {
	m := mustReal(t, 2, 2, 1, 2, 3, 4)
	for _, ij := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "At(%d,%d)", ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrIndexOutOfBounds)
}

func TestNew_CopiesInput(t *testing.T) {
	data := []matrix.Real{1, 2, 3, 4}
	m, err := matrix.New(2, 2, data)
	require.NoError(t, err)
	data[0] = 99
	require.Equal(t, matrix.Real(1), mustAt(t, m, 0, 0))

	out := m.Data()
	out[1] = 42
	require.Equal(t, matrix.Real(2), mustAt(t, m, 0, 1))
}

func TestZerosAndIdentity(t *testing.T) {
	z, err := matrix.Zeros[cplx.Complex](2, 3)
	require.NoError(t, err)
	z.Do(func(i, j int, v cplx.Complex) bool {
		require.True(t, v.IsZero(), "[%d,%d]", i, j)
		return true
	})

	id := mustIdentity[cplx.Complex](t, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := c(0, 0)
			if i == j {
				want = c(1, 0)
			}
			require.Equal(t, want, mustAt(t, id, i, j))
		}
	}

	empty := mustIdentity[matrix.Real](t, 0)
	require.Equal(t, 0, empty.Rows())
	require.Empty(t, empty.Data())
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]matrix.Real{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.True(t, m.Equal(mustReal(t, 2, 3, 1, 2, 3, 4, 5, 6)))

	_, err = matrix.FromRows([][]matrix.Real{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, err := matrix.FromRows[matrix.Real](nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

func TestSetAndClone(t *testing.T) {
	m := mustReal(t, 2, 2, 1, 2, 3, 4)
	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, 10))
	require.Equal(t, matrix.Real(10), mustAt(t, cl, 0, 0))
	require.Equal(t, matrix.Real(1), mustAt(t, m, 0, 0), "Clone must not alias")
	require.False(t, m.Equal(cl))
}

func TestNaNInfPolicy(t *testing.T) {
	nan := math.NaN()

	// Default: IEEE pass-through.
	m, err := matrix.FromFloat64s(1, 2, []float64{nan, math.Inf(1)})
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(mustAt(t, m, 0, 0))))

	_, err = matrix.FromFloat64s(1, 2, []float64{1, nan}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.New(1, 1, []cplx.Complex{c(0, math.Inf(-1))}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	strict, err := matrix.FromFloat64s(1, 1, []float64{1}, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, matrix.Real(nan)), matrix.ErrNaNInf)
	require.NoError(t, strict.Set(0, 0, 2))
	require.ErrorIs(t, strict.Clone().Set(0, 0, matrix.Real(math.Inf(1))), matrix.ErrNaNInf, "Clone keeps the policy")

	relaxed, err := matrix.FromFloat64s(1, 1, []float64{nan}, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, matrix.Real(nan)))
}

func TestString(t *testing.T) {
	require.Equal(t, "[1, 2]\n[3, 4]\n", mustReal(t, 2, 2, 1, 2, 3, 4).String())
	require.Equal(t, "[1+2i, 0-1i]\n", mustComplex(t, 1, 2, c(1, 2), c(0, -1)).String())
}

func TestDo_StopsEarly(t *testing.T) {
	m := mustReal(t, 2, 2, 1, 2, 3, 4)
	var seen []matrix.Real
	m.Do(func(_, _ int, v matrix.Real) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []matrix.Real{1, 2, 3}, seen)
}

func TestNew_ShapeOverflow(t *testing.T) {
	// rows*cols wraps around int; must not be mistaken for an empty matrix.
	_, err := matrix.New[matrix.Real](math.MaxInt/2+1, 2, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromFloat64s(math.MaxInt, math.MaxInt, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Zeros[cplx.Complex](math.MaxInt/3+1, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Identity[matrix.Real](math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	// zero-width shapes with a huge row count are fine
	m, err := matrix.New[matrix.Real](math.MaxInt, 0, nil)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, m.Rows())
	require.Empty(t, m.Data())
}

func TestEqual_Nil(t *testing.T) {
	var nilDense *matrix.Dense[matrix.Real]
	m := mustReal(t, 1, 1, 1)
	require.False(t, m.Equal(nil))
	require.False(t, nilDense.Equal(m))
	require.True(t, nilDense.Equal(nil))
}

// sumDiagonal is instantiated for every shipped element type.
func sumDiagonal[T matrix.Scalar[T]](t *testing.T, m *matrix.Dense[T]) T {
	t.Helper()
	var acc T
	for i := 0; i < m.Rows(); i++ {
		acc = acc.Add(mustAt(t, m, i, i))
	}

	return acc
}

func TestScalarElementTypes(t *testing.T) {
	require.Equal(t, matrix.Real(3), sumDiagonal(t, mustIdentity[matrix.Real](t, 3)))
	require.Equal(t, c(2, 0), sumDiagonal(t, mustIdentity[cplx.Complex](t, 2)))
}
