package dict

import (
	"math"
	"slices"
)

// Descriptor records where a key's value lives in the buffer and what shape
// it carries. Descriptors are immutable once created: the span and shape of a
// key never change after Add, only the values stored in the span do.
type Descriptor struct {
	start int
	end   int
	shape []int // nil is the scalar sentinel
}

// NewDescriptor builds a descriptor for a span starting at start with the
// given shape. A nil shape is the scalar sentinel (span of one element);
// otherwise the span covers the product of the dimensions.
//
// The product saturates at math.MaxInt instead of wrapping, so a descriptor
// built from an overflowing shape can never pass FromParts' coverage check
// against a real buffer.
func NewDescriptor(start int, shape []int) Descriptor {
	size := 1
	for _, dim := range shape {
		if dim > 0 && size > math.MaxInt/dim {
			size = math.MaxInt
			break
		}
		size *= dim
	}

	end := start + size
	if end < start {
		end = math.MaxInt
	}

	return Descriptor{
		start: start,
		end:   end,
		shape: slices.Clone(shape),
	}
}

// Start returns the first element offset of the span.
func (d Descriptor) Start() int {
	return d.start
}

// End returns the element offset just past the span.
func (d Descriptor) End() int {
	return d.end
}

// Size returns the number of elements in the span.
func (d Descriptor) Size() int {
	return d.end - d.start
}

// Shape returns a copy of the recorded shape; nil for scalars.
func (d Descriptor) Shape() []int {
	return slices.Clone(d.shape)
}

// IsScalar returns whether the descriptor carries the scalar sentinel.
func (d Descriptor) IsScalar() bool {
	return d.shape == nil
}
