package dict

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/bufdict/errs"
)

// Array is a value with flat row-major storage and an optional shape.
//
// A nil shape marks a scalar: exactly one element, unwrapped on reads.
// Arrays are views - they alias the slice they were built from (or, when
// returned by Dict.Get, the dictionary's live buffer), so element writes
// through Flat are visible to every holder of the same storage.
type Array[T any] struct {
	data  []T
	shape []int
}

// Scalar wraps a single value as a scalar array (the nil-shape sentinel).
func Scalar[T any](v T) Array[T] {
	return Array[T]{data: []T{v}}
}

// Vector wraps a slice as a rank-1 array. The slice is aliased, not copied.
func Vector[T any](data []T) Array[T] {
	return Array[T]{data: data, shape: []int{len(data)}}
}

// NewArray wraps flat row-major data with an explicit shape.
//
// The data slice is aliased, not copied. With no shape arguments the result
// is a rank-1 array over the whole slice.
//
// Returns ErrInvalidShape if any dimension is not positive, or
// ErrShapeMismatch if the shape's element count differs from len(data).
func NewArray[T any](data []T, shape ...int) (Array[T], error) {
	if len(shape) == 0 {
		return Vector(data), nil
	}

	count := 1
	for _, dim := range shape {
		if dim <= 0 {
			return Array[T]{}, fmt.Errorf("%w: dimension %d", errs.ErrInvalidShape, dim)
		}
		if count > math.MaxInt/dim {
			return Array[T]{}, fmt.Errorf("%w: shape %v overflows the element count", errs.ErrInvalidShape, shape)
		}
		count *= dim
	}

	if count != len(data) {
		return Array[T]{}, fmt.Errorf("%w: shape %v holds %d elements, data has %d",
			errs.ErrShapeMismatch, shape, count, len(data))
	}

	return Array[T]{data: data, shape: slices.Clone(shape)}, nil
}

// IsScalar returns whether the array carries the scalar sentinel.
func (a Array[T]) IsScalar() bool {
	return a.shape == nil
}

// Rank returns the number of dimensions; 0 for scalars.
func (a Array[T]) Rank() int {
	return len(a.shape)
}

// Shape returns a copy of the dimension sizes; nil for scalars.
func (a Array[T]) Shape() []int {
	return slices.Clone(a.shape)
}

// Size returns the total number of elements.
func (a Array[T]) Size() int {
	return len(a.data)
}

// Flat returns the underlying row-major storage. The slice is live: writes
// through it are visible to every view of the same storage.
func (a Array[T]) Flat() []T {
	return a.data
}

// Scalar returns the single element of a scalar or size-1 array.
//
// Returns ErrShapeMismatch if the array holds more than one element.
func (a Array[T]) Scalar() (T, error) {
	var zero T
	if len(a.data) != 1 {
		return zero, fmt.Errorf("%w: array of %d elements is not a scalar", errs.ErrShapeMismatch, len(a.data))
	}

	return a.data[0], nil
}

// At returns the element at the given row-major indices.
//
// Scalars take no indices; an array of rank N takes exactly N.
func (a Array[T]) At(indices ...int) (T, error) {
	var zero T
	if len(indices) != len(a.shape) {
		return zero, fmt.Errorf("%w: got %d indices for rank %d", errs.ErrShapeMismatch, len(indices), len(a.shape))
	}

	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			return zero, fmt.Errorf("%w: index %d out of range for dimension %d (size %d)",
				errs.ErrInvalidArguments, idx, i, a.shape[i])
		}
		flat = flat*a.shape[i] + idx
	}

	return a.data[flat], nil
}

// Reshape returns a view over the same storage with a new shape.
//
// Returns ErrShapeMismatch if the new shape's element count differs.
func (a Array[T]) Reshape(shape ...int) (Array[T], error) {
	return NewArray(a.data, shape...)
}

// Clone returns an array with the same shape over copied storage.
func (a Array[T]) Clone() Array[T] {
	return Array[T]{
		data:  slices.Clone(a.data),
		shape: slices.Clone(a.shape),
	}
}
