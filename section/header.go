package section

import (
	"fmt"

	"github.com/arloliu/bufdict/errs"
)

// Header is the fixed-size header section at the start of a snapshot.
//
// Byte layout:
//
//	offset 0-1:   Options (packed flag word, always little-endian)
//	offset 2:     PayloadType
//	offset 3:     CompressionType
//	offset 4-7:   EntryCount
//	offset 8-11:  PayloadOffset
//	offset 12-15: PayloadSize
//	offset 16-23: PayloadDigest
//	offset 24-27: ElementCount
//	offset 28-31: reserved (zero)
type Header struct {
	// EntryCount is the number of keys (field entries) in the snapshot.
	EntryCount uint32
	// PayloadOffset is the byte offset to the start of the (possibly
	// compressed) payload section. It records the offset after the key table
	// and field entry sections.
	PayloadOffset uint32
	// PayloadSize is the uncompressed payload size in bytes.
	PayloadSize uint32
	// PayloadDigest is the xxHash64 of the uncompressed payload bytes.
	PayloadDigest uint64
	// ElementCount is the total number of buffer elements across all fields.
	ElementCount uint32

	// Flag is the packed field for format options and the magic number.
	Flag Flag
}

// NewHeader creates a Header with default flags. Counts and offsets are
// filled in when the encoder finishes.
func NewHeader() *Header {
	return &Header{
		Flag: NewFlag(),
	}
}

// Parse parses the header from a byte slice.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	// Parse options first to determine endianness (the Options field itself
	// is always little-endian).
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.PayloadType = data[2]
	h.Flag.CompressionType = data[3]

	engine := h.Flag.GetEndianEngine()

	h.EntryCount = engine.Uint32(data[4:8])
	h.PayloadOffset = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.PayloadDigest = engine.Uint64(data[16:24])
	h.ElementCount = engine.Uint32(data[24:28])

	return h.Flag.Validate()
}

// Bytes serializes the Header into a 32-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.PayloadType
	b[3] = h.Flag.CompressionType
	engine.PutUint32(b[4:8], h.EntryCount)
	engine.PutUint32(b[8:12], h.PayloadOffset)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint64(b[16:24], h.PayloadDigest)
	engine.PutUint32(b[24:28], h.ElementCount)

	return b
}

// ParseHeader parses a Header from a byte slice.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
