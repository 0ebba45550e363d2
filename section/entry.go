package section

import (
	"bytes"
	"fmt"
	"math"

	"github.com/arloliu/bufdict/endian"
	"github.com/arloliu/bufdict/errs"
)

// FieldEntry records the buffer span and shape of a single key in the
// snapshot's field entry section.
//
// Entries are variable-size:
//
//	offset 0-3: Start (uint32) - absolute element offset into the buffer
//	offset 4:   Rank (uint8)   - number of dimensions, or ScalarRank (0xFF)
//	            for the scalar sentinel
//	offset 5..: Dims (Rank × uint32), omitted for scalars
//
// Entry order matches key table order (dictionary insertion order). The
// element count of an entry is the product of its dims (1 for scalars), and
// consecutive entries must tile the buffer contiguously: each entry's Start
// equals the previous entry's Start plus its element count.
type FieldEntry struct {
	// Start is the absolute element offset of the field's span in the buffer.
	Start int

	// Shape is the field's dimension sizes in row-major order.
	// A nil Shape is the scalar sentinel: the span holds exactly one element,
	// returned unwrapped rather than as a length-1 array.
	Shape []int
}

// Count returns the number of buffer elements the entry covers.
// The product saturates at math.MaxInt instead of wrapping.
func (e FieldEntry) Count() int {
	count := 1
	for _, dim := range e.Shape {
		if dim > 0 && count > math.MaxInt/dim {
			return math.MaxInt
		}
		count *= dim
	}

	return count
}

// IsScalar returns whether the entry carries the scalar sentinel.
func (e FieldEntry) IsScalar() bool {
	return e.Shape == nil
}

// EncodedSize returns the encoded size of the entry in bytes.
func (e FieldEntry) EncodedSize() int {
	return 5 + 4*len(e.Shape)
}

// WriteTo writes the field entry to a buffer using the specified endian engine.
func (e FieldEntry) WriteTo(buf *bytes.Buffer, engine endian.EndianEngine) error {
	if len(e.Shape) > MaxRank {
		return fmt.Errorf("%w: rank %d exceeds maximum %d", errs.ErrInvalidFieldEntry, len(e.Shape), MaxRank)
	}
	if e.Count() > MaxElementCount {
		return fmt.Errorf("%w: shape %v exceeds maximum element count %d",
			errs.ErrInvalidFieldEntry, e.Shape, MaxElementCount)
	}

	var scratch [4]byte
	engine.PutUint32(scratch[:], uint32(e.Start)) //nolint: gosec
	buf.Write(scratch[:])

	if e.IsScalar() {
		buf.WriteByte(ScalarRank)
		return nil
	}

	buf.WriteByte(uint8(len(e.Shape))) //nolint: gosec
	for _, dim := range e.Shape {
		engine.PutUint32(scratch[:], uint32(dim)) //nolint: gosec
		buf.Write(scratch[:])
	}

	return nil
}

// ParseFieldEntry parses one field entry starting at data[offset].
//
// Returns the entry and the offset just past it.
func ParseFieldEntry(data []byte, offset int, engine endian.EndianEngine) (FieldEntry, int, error) {
	if len(data) < offset+5 {
		return FieldEntry{}, 0, fmt.Errorf("%w: truncated entry at offset %d", errs.ErrInvalidFieldEntry, offset)
	}

	entry := FieldEntry{
		Start: int(engine.Uint32(data[offset : offset+4])),
	}
	rank := data[offset+4]
	offset += 5

	if rank == ScalarRank {
		return entry, offset, nil
	}

	if rank == 0 || rank > MaxRank {
		return FieldEntry{}, 0, fmt.Errorf("%w: invalid rank %d", errs.ErrInvalidFieldEntry, rank)
	}

	if len(data) < offset+4*int(rank) {
		return FieldEntry{}, 0, fmt.Errorf("%w: truncated dims at offset %d", errs.ErrInvalidFieldEntry, offset)
	}

	entry.Shape = make([]int, rank)
	count := 1
	for i := range int(rank) {
		dim := engine.Uint32(data[offset:])
		if dim == 0 {
			return FieldEntry{}, 0, fmt.Errorf("%w: zero dimension", errs.ErrInvalidFieldEntry)
		}
		// Wire dims are uint32 and rank can reach MaxRank, so the product can
		// wrap a 64-bit int; reject anything past the snapshot element limit.
		if count > MaxElementCount/int(dim) {
			return FieldEntry{}, 0, fmt.Errorf("%w: shape exceeds maximum element count %d",
				errs.ErrInvalidFieldEntry, MaxElementCount)
		}
		count *= int(dim)
		entry.Shape[i] = int(dim)
		offset += 4
	}

	return entry, offset, nil
}
