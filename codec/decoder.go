package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/bufdict/compress"
	"github.com/arloliu/bufdict/dict"
	"github.com/arloliu/bufdict/endian"
	"github.com/arloliu/bufdict/errs"
	"github.com/arloliu/bufdict/format"
	ienc "github.com/arloliu/bufdict/internal/encoding"
	"github.com/arloliu/bufdict/internal/hash"
	"github.com/arloliu/bufdict/section"
)

// Decoder reconstructs a dictionary from a binary snapshot.
//
// The payload representation is detected from the header tag: plain payloads
// require element type float64; decomposed payloads require a Decomposer to
// rebuild the opaque elements from mean + covariance.
//
// Note: A Decoder is NOT reusable. After calling Decode, create a new decoder
// for further decoding.
type Decoder[T any] struct {
	data   []byte
	header section.Header
	engine endian.EndianEngine
	dec    Decomposer[T]
}

// NewDecoder creates a Decoder for the given snapshot data.
//
// The header is parsed and validated immediately; sections and the payload
// are not touched until Decode.
func NewDecoder[T any](data []byte, dec Decomposer[T]) (*Decoder[T], error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	return &Decoder[T]{
		data:   data,
		header: header,
		engine: header.Flag.GetEndianEngine(),
		dec:    dec,
	}, nil
}

// Decode reconstructs the dictionary: keys and descriptors are restored
// verbatim, and the buffer is either read back exactly (plain payload) or
// rebuilt through the Decomposer (decomposed payload).
func (d *Decoder[T]) Decode() (*dict.Dict[T], error) {
	keys, descs, sectionEnd, err := d.parseSections()
	if err != nil {
		return nil, err
	}

	if int(d.header.PayloadOffset) != sectionEnd {
		return nil, fmt.Errorf("%w: payload offset %d, sections end at %d",
			errs.ErrInvalidFieldEntry, d.header.PayloadOffset, sectionEnd)
	}

	payload, err := d.decodePayload()
	if err != nil {
		return nil, err
	}

	n := int(d.header.ElementCount)

	var buf []T
	switch d.header.Flag.Payload() {
	case format.PayloadPlain:
		buf, err = d.plainBuffer(payload, n)
	case format.PayloadDecomposed:
		buf, err = d.composedBuffer(payload, n)
	default:
		err = fmt.Errorf("%w: 0x%02X", errs.ErrInvalidPayloadType, d.header.Flag.PayloadType)
	}
	if err != nil {
		return nil, err
	}

	return dict.FromParts(keys, descs, buf)
}

// parseSections reads the key table and field entries, returning the keys,
// the rebuilt descriptors, and the byte offset just past the sections.
func (d *Decoder[T]) parseSections() ([]string, []dict.Descriptor, int, error) {
	keys, keyTableLen, err := ienc.DecodeKeys(d.data[section.HeaderSize:], d.engine)
	if err != nil {
		return nil, nil, 0, err
	}

	if len(keys) != int(d.header.EntryCount) {
		return nil, nil, 0, fmt.Errorf("%w: key table has %d keys, header claims %d",
			errs.ErrInvalidKeyTable, len(keys), d.header.EntryCount)
	}

	offset := section.KeyTableOffset + keyTableLen
	descs := make([]dict.Descriptor, 0, len(keys))
	total := 0

	for i := range keys {
		entry, next, err := section.ParseFieldEntry(d.data, offset, d.engine)
		if err != nil {
			return nil, nil, 0, err
		}

		if entry.Start != total {
			return nil, nil, 0, fmt.Errorf("%w: entry %d starts at %d, expected %d",
				errs.ErrInvalidFieldEntry, i, entry.Start, total)
		}

		descs = append(descs, dict.NewDescriptor(entry.Start, entry.Shape))
		total += entry.Count()
		offset = next
	}

	if total != int(d.header.ElementCount) {
		return nil, nil, 0, fmt.Errorf("%w: entries cover %d elements, header claims %d",
			errs.ErrInvalidFieldEntry, total, d.header.ElementCount)
	}

	return keys, descs, offset, nil
}

// decodePayload decompresses the payload and verifies its size and digest.
func (d *Decoder[T]) decodePayload() ([]byte, error) {
	if len(d.data) < int(d.header.PayloadOffset) {
		return nil, fmt.Errorf("%w: data ends at %d, payload starts at %d",
			errs.ErrInvalidHeaderSize, len(d.data), d.header.PayloadOffset)
	}

	compressor, err := compress.GetCodec(d.header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	payload, err := compressor.Decompress(d.data[d.header.PayloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("payload decompression failed: %w", err)
	}

	if len(payload) != int(d.header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header claims %d",
			errs.ErrPayloadSizeMismatch, len(payload), d.header.PayloadSize)
	}

	if digest := hash.Digest(payload); digest != d.header.PayloadDigest {
		return nil, fmt.Errorf("%w: payload digest 0x%016x, header claims 0x%016x",
			errs.ErrChecksumMismatch, digest, d.header.PayloadDigest)
	}

	return payload, nil
}

// plainBuffer restores a float64 buffer from raw element bits.
func (d *Decoder[T]) plainBuffer(payload []byte, n int) ([]T, error) {
	if len(payload) != n*section.ElementSize {
		return nil, fmt.Errorf("%w: plain payload is %d bytes for %d elements",
			errs.ErrPayloadSizeMismatch, len(payload), n)
	}

	floats := make([]float64, n)
	for i := range floats {
		floats[i] = math.Float64frombits(d.engine.Uint64(payload[i*section.ElementSize:]))
	}

	buf, ok := any(floats).([]T)
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: plain payload cannot restore element type %T",
			errs.ErrUnsupportedElementType, zero)
	}

	return buf, nil
}

// composedBuffer rebuilds an opaque-element buffer from mean + covariance.
func (d *Decoder[T]) composedBuffer(payload []byte, n int) ([]T, error) {
	if d.dec == nil {
		return nil, fmt.Errorf("%w: snapshot carries a decomposed payload", errs.ErrNoDecomposer)
	}

	if len(payload) != (n+n*n)*section.ElementSize {
		return nil, fmt.Errorf("%w: decomposed payload is %d bytes for %d elements",
			errs.ErrPayloadSizeMismatch, len(payload), n)
	}

	readFloat := func(i int) float64 {
		return math.Float64frombits(d.engine.Uint64(payload[i*section.ElementSize:]))
	}

	mean := make([]float64, n)
	for i := range mean {
		mean[i] = readFloat(i)
	}

	cov := make([][]float64, n)
	for i := range cov {
		row := make([]float64, n)
		for j := range row {
			row[j] = readFloat(n + i*n + j)
		}
		cov[i] = row
	}

	buf, err := d.dec.Compose(mean, cov)
	if err != nil {
		return nil, err
	}
	if len(buf) != n {
		return nil, fmt.Errorf("%w: decomposer composed %d elements, expected %d",
			errs.ErrSizeMismatch, len(buf), n)
	}

	return buf, nil
}

// Unmarshal reconstructs a float64 dictionary from a plain-payload snapshot.
func Unmarshal(data []byte) (*dict.Dict[float64], error) {
	decoder, err := NewDecoder[float64](data, nil)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// UnmarshalWith reconstructs a dictionary of an opaque element type,
// rebuilding its buffer through dec when the snapshot carries a decomposed
// payload.
func UnmarshalWith[T any](data []byte, dec Decomposer[T]) (*dict.Dict[T], error) {
	decoder, err := NewDecoder(data, dec)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}
