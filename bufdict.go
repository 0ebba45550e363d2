// Package bufdict provides an ordered, append-only dictionary of named
// numeric values backed by a single flat buffer, with a compact binary
// snapshot format for persistence.
//
// Bufdict is built for workloads that juggle many named, possibly
// array-shaped numeric quantities and need to switch between two views of
// them: structural access by key with shapes preserved, and the whole
// collection as one flat vector for bulk linear algebra or zero-copy buffer
// substitution.
//
// # Core Features
//
//   - One contiguous rank-1 buffer backs every value; per-key descriptors
//     record immutable spans and optional shapes
//   - Append-only layout: spans never move, so externally held slices and
//     aliased views stay valid for the dictionary's lifetime
//   - Zero-copy buffer aliasing: view the same logical fields through
//     different storage, or swap the backing store without touching the
//     key/shape metadata
//   - Binary snapshots with optional compression (None, Zstd, S2, LZ4) and
//     xxHash64 payload digests
//   - A decomposed snapshot path for opaque element types that cannot be
//     serialized directly but can be rebuilt from mean + covariance
//
// # Basic Usage
//
// Building and persisting a dictionary:
//
//	import "github.com/arloliu/bufdict"
//
//	d := bufdict.New[float64]()
//	_ = d.SetScalar("offset", 0.5)
//	_ = d.Set("weights", bufdict.Vector([]float64{1.0, 2.0, 3.0}))
//
//	data, _ := bufdict.Marshal(d)
//	restored, _ := bufdict.Unmarshal(data)
//
// Viewing the same layout through different storage:
//
//	backing := d.Flatten()
//	view, _ := bufdict.WithBuffer(d, backing)
//	// writes through view land in backing; d is untouched
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the dict and
// codec packages, covering the most common use cases. For fine-grained
// control (custom Decomposers, encoder configuration, snapshot inspection),
// use those packages directly.
package bufdict

import (
	"github.com/arloliu/bufdict/codec"
	"github.com/arloliu/bufdict/dict"
)

// Dict is an ordered, append-only dictionary over one flat buffer.
// See the dict package for the full API.
type Dict[T any] = dict.Dict[T]

// Array is a shaped view over flat row-major storage.
type Array[T any] = dict.Array[T]

// Pair is a key/value pair for order-preserving construction.
type Pair[T any] = dict.Pair[T]

// New creates an empty dictionary.
func New[T any]() *Dict[T] {
	return dict.New[T]()
}

// From builds a dictionary from any supported construction form: nil, a
// map (keys sorted), a pair slice (order preserved), or another dictionary
// (cloned). See dict.From.
func From[T any](src any) (*Dict[T], error) {
	return dict.From[T](src)
}

// Clone returns a structural copy of other (registry and buffer copied).
func Clone[T any](other *Dict[T]) *Dict[T] {
	return dict.Clone(other)
}

// WithBuffer returns a dictionary reusing other's layout over buf, aliased.
func WithBuffer[T any](other *Dict[T], buf []T) (*Dict[T], error) {
	return dict.WithBuffer(other, buf)
}

// Scalar wraps a single value as a scalar array.
func Scalar[T any](v T) Array[T] {
	return dict.Scalar(v)
}

// Vector wraps a slice as a rank-1 array, aliasing it.
func Vector[T any](data []T) Array[T] {
	return dict.Vector(data)
}

// NewArray wraps flat row-major data with an explicit shape.
func NewArray[T any](data []T, shape ...int) (Array[T], error) {
	return dict.NewArray(data, shape...)
}

// Marshal serializes a float64 dictionary into a binary snapshot.
func Marshal(d *Dict[float64], opts ...codec.Option) ([]byte, error) {
	return codec.Marshal(d, opts...)
}

// Unmarshal reconstructs a float64 dictionary from a snapshot.
func Unmarshal(data []byte) (*Dict[float64], error) {
	return codec.Unmarshal(data)
}

// MarshalWith serializes a dictionary of an opaque element type through dec.
func MarshalWith[T any](d *Dict[T], dec codec.Decomposer[T], opts ...codec.Option) ([]byte, error) {
	return codec.MarshalWith(d, dec, opts...)
}

// UnmarshalWith reconstructs a dictionary of an opaque element type through dec.
func UnmarshalWith[T any](data []byte, dec codec.Decomposer[T]) (*Dict[T], error) {
	return codec.UnmarshalWith(data, dec)
}
