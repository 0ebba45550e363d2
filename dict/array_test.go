package dict

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bufdict/errs"
)

func TestScalar(t *testing.T) {
	a := Scalar(3.5)
	require.True(t, a.IsScalar())
	require.Equal(t, 0, a.Rank())
	require.Nil(t, a.Shape())
	require.Equal(t, 1, a.Size())

	v, err := a.Scalar()
	require.NoError(t, err)
	require.Equal(t, 3.5, v)
}

func TestVector(t *testing.T) {
	a := Vector([]float64{1, 2, 3})
	require.False(t, a.IsScalar())
	require.Equal(t, 1, a.Rank())
	require.Equal(t, []int{3}, a.Shape())
	require.Equal(t, 3, a.Size())

	_, err := a.Scalar()
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestVector_AliasesInput(t *testing.T) {
	data := []float64{1, 2, 3}
	a := Vector(data)

	data[1] = 20
	require.Equal(t, []float64{1, 20, 3}, a.Flat())

	a.Flat()[2] = 30
	require.Equal(t, []float64{1, 20, 30}, data)
}

func TestNewArray(t *testing.T) {
	a, err := NewArray([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, a.Shape())
	require.Equal(t, 2, a.Rank())
	require.Equal(t, 6, a.Size())
}

func TestNewArray_NoShapeIsVector(t *testing.T) {
	a, err := NewArray([]float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []int{2}, a.Shape())
}

func TestNewArray_ShapeMismatch(t *testing.T) {
	_, err := NewArray([]float64{1, 2, 3}, 2, 3)
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestNewArray_InvalidDimension(t *testing.T) {
	_, err := NewArray([]float64{1, 2, 3}, 3, 0)
	require.ErrorIs(t, err, errs.ErrInvalidShape)

	_, err = NewArray([]float64{1, 2, 3}, -1, 3)
	require.ErrorIs(t, err, errs.ErrInvalidShape)
}

func TestAt(t *testing.T) {
	a, err := NewArray([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	v, err := a.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	v, err = a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	// Scalars take no indices.
	s := Scalar(7.0)
	v, err = s.At()
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

func TestAt_Errors(t *testing.T) {
	a, err := NewArray([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	_, err = a.At(1)
	require.ErrorIs(t, err, errs.ErrShapeMismatch)

	_, err = a.At(2, 0)
	require.ErrorIs(t, err, errs.ErrInvalidArguments)

	_, err = a.At(0, -1)
	require.ErrorIs(t, err, errs.ErrInvalidArguments)
}

func TestReshape(t *testing.T) {
	a := Vector([]float64{1, 2, 3, 4, 5, 6})

	m, err := a.Reshape(3, 2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, m.Shape())

	// Same storage, row-major.
	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = a.Reshape(4, 2)
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestArrayClone_Independent(t *testing.T) {
	a := Vector([]float64{1, 2, 3})
	b := a.Clone()

	b.Flat()[0] = 99
	require.Equal(t, []float64{1, 2, 3}, a.Flat())
	require.Equal(t, []int{3}, b.Shape())
}

func TestNewArray_ShapeProductOverflow(t *testing.T) {
	// 5 * 7378697629483820648 wraps mod 2^64 back to exactly len(data);
	// the overflow must be rejected, not slip past the size check.
	_, err := NewArray(make([]float64, 8), 5, 7378697629483820648)
	require.ErrorIs(t, err, errs.ErrInvalidShape)

	_, err = NewArray(make([]float64, 4), math.MaxInt, math.MaxInt, 4)
	require.ErrorIs(t, err, errs.ErrInvalidShape)
}
