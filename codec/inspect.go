package codec

import (
	"fmt"

	"github.com/arloliu/bufdict/errs"
	"github.com/arloliu/bufdict/format"
	ienc "github.com/arloliu/bufdict/internal/encoding"
	"github.com/arloliu/bufdict/section"
)

// FieldInfo describes one key of an inspected snapshot.
type FieldInfo struct {
	// Key is the field's key.
	Key string
	// Start is the field's element offset into the buffer.
	Start int
	// Shape is the field's dimension sizes; nil for scalars.
	Shape []int
	// Size is the field's element count.
	Size int
	// Scalar reports whether the field carries the scalar sentinel.
	Scalar bool
}

// Summary is the metadata of a snapshot: everything except the values.
type Summary struct {
	// Payload is the payload representation tag (Plain or Decomposed).
	Payload format.PayloadType
	// Compression is the payload compression algorithm.
	Compression format.CompressionType
	// BigEndian reports whether the snapshot is big-endian.
	BigEndian bool
	// ElementCount is the total number of buffer elements.
	ElementCount int
	// PayloadBytes is the uncompressed payload size in bytes.
	PayloadBytes int
	// Digest is the xxHash64 of the uncompressed payload.
	Digest uint64
	// Fields lists all keys in insertion order.
	Fields []FieldInfo
}

// Inspect reports a snapshot's metadata - keys, shapes, spans, payload kind,
// compression - without decompressing the payload or reconstructing any
// element. This works for decomposed payloads too, no Decomposer needed.
func Inspect(data []byte) (*Summary, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	engine := header.Flag.GetEndianEngine()

	keys, keyTableLen, err := ienc.DecodeKeys(data[section.HeaderSize:], engine)
	if err != nil {
		return nil, err
	}

	if len(keys) != int(header.EntryCount) {
		return nil, fmt.Errorf("%w: key table has %d keys, header claims %d",
			errs.ErrInvalidKeyTable, len(keys), header.EntryCount)
	}

	summary := &Summary{
		Payload:      header.Flag.Payload(),
		Compression:  header.Flag.Compression(),
		BigEndian:    header.Flag.IsBigEndian(),
		ElementCount: int(header.ElementCount),
		PayloadBytes: int(header.PayloadSize),
		Digest:       header.PayloadDigest,
		Fields:       make([]FieldInfo, 0, len(keys)),
	}

	offset := section.KeyTableOffset + keyTableLen
	for _, key := range keys {
		entry, next, err := section.ParseFieldEntry(data, offset, engine)
		if err != nil {
			return nil, err
		}

		summary.Fields = append(summary.Fields, FieldInfo{
			Key:    key,
			Start:  entry.Start,
			Shape:  entry.Shape,
			Size:   entry.Count(),
			Scalar: entry.IsScalar(),
		})
		offset = next
	}

	return summary, nil
}
