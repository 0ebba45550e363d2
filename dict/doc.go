// Package dict implements an ordered, append-only dictionary of named numeric
// values backed by one flat buffer.
//
// Every value - scalar or multi-dimensional array - occupies a contiguous
// span of a single rank-1 buffer. The dictionary can therefore be manipulated
// two ways: structurally, by key with shapes preserved, or as one flat vector
// for bulk operations and whole-buffer substitution.
//
// # Layout model
//
// Each key maps to an immutable Descriptor recording its span and optional
// shape. Spans are assigned append-only: the first key added occupies the
// lowest offsets, spans are contiguous with no gaps, and once assigned they
// never move. Keys are never removed (Delete always fails), which guarantees
// that descriptors and any externally held buffer slices stay valid for the
// dictionary's lifetime.
//
// A nil shape is the scalar sentinel: the span holds exactly one element and
// reads return it unwrapped instead of as a length-1 array.
//
// # Buffer aliasing
//
// WithBuffer builds a dictionary that reuses another's layout but reads and
// writes through a caller-supplied buffer, and SetFlat swaps a dictionary's
// backing buffer wholesale. Neither copies: element writes through one
// aliased instance are immediately visible through every other. This is the
// mechanism for viewing the same logical fields through different storage and
// it is deliberate - nothing here copies defensively on share. Callers that
// share a buffer across goroutines must synchronize externally.
//
// Note: Add grows the buffer and may reallocate it, which silently un-aliases
// previously shared storage, exactly like appending to a shared slice.
//
// # Basic usage
//
//	d := dict.New[float64]()
//	_ = d.SetScalar("s", 0.0)
//	_ = d.Set("v", dict.Vector([]float64{1.0, 2.0}))
//	d.Flatten() // [0.0, 1.0, 2.0]
//
// The dictionary is not safe for concurrent use.
package dict
