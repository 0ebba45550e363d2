package codec

import (
	"bytes"
	"fmt"
	"math"

	"github.com/arloliu/bufdict/compress"
	"github.com/arloliu/bufdict/dict"
	"github.com/arloliu/bufdict/endian"
	"github.com/arloliu/bufdict/errs"
	"github.com/arloliu/bufdict/format"
	ienc "github.com/arloliu/bufdict/internal/encoding"
	"github.com/arloliu/bufdict/internal/hash"
	"github.com/arloliu/bufdict/internal/options"
	"github.com/arloliu/bufdict/internal/pool"
	"github.com/arloliu/bufdict/section"
)

// Encoder serializes dictionaries into binary snapshots.
//
// The payload representation is chosen per Marshal call by probing the
// buffer's element type: float64 buffers use the plain payload; any other
// element type requires the encoder's Decomposer and uses the decomposed
// (mean + covariance) payload.
//
// An Encoder is reusable across Marshal calls but NOT safe for concurrent use.
type Encoder[T any] struct {
	flag       section.Flag
	engine     endian.EndianEngine
	compressor compress.Codec
	dec        Decomposer[T]
}

// NewEncoder creates an Encoder for element type T.
//
// dec may be nil for element types the plain payload handles (float64);
// any other element type fails at Marshal time with ErrNoDecomposer.
func NewEncoder[T any](dec Decomposer[T], opts ...Option) (*Encoder[T], error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	compressor, err := compress.GetCodec(cfg.flag.Compression())
	if err != nil {
		return nil, err
	}

	return &Encoder[T]{
		flag:       cfg.flag,
		engine:     cfg.flag.GetEndianEngine(),
		compressor: compressor,
		dec:        dec,
	}, nil
}

// Marshal serializes d into a snapshot byte slice.
func (e *Encoder[T]) Marshal(d *dict.Dict[T]) ([]byte, error) {
	if d.Len() > section.MaxEntryCount {
		return nil, fmt.Errorf("%w: %d keys, maximum %d", errs.ErrTooManyEntries, d.Len(), section.MaxEntryCount)
	}
	if d.Size() > section.MaxElementCount {
		return nil, fmt.Errorf("%w: %d elements, maximum %d", errs.ErrTooManyEntries, d.Size(), section.MaxElementCount)
	}

	keys := make([]string, 0, d.Len())
	entries := make([]section.FieldEntry, 0, d.Len())
	for key := range d.Keys() {
		desc, err := d.DescriptorOf(key)
		if err != nil {
			return nil, err
		}

		keys = append(keys, key)
		entries = append(entries, section.FieldEntry{
			Start: desc.Start(),
			Shape: desc.Shape(), // nil for scalars, the sentinel survives the wire
		})
	}

	keyTable, err := ienc.EncodeKeys(keys, e.engine)
	if err != nil {
		return nil, err
	}

	var entrySection bytes.Buffer
	for _, entry := range entries {
		if err := entry.WriteTo(&entrySection, e.engine); err != nil {
			return nil, err
		}
	}

	flag := e.flag
	payload, err := e.encodePayload(d, &flag)
	if err != nil {
		return nil, err
	}
	defer pool.PutSnapshotBuffer(payload)

	digest := hash.Digest(payload.Bytes())

	compressed, err := e.compressor.Compress(payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("payload compression failed: %w", err)
	}

	header := section.Header{
		EntryCount:    uint32(d.Len()),                                                 //nolint: gosec
		PayloadOffset: uint32(section.HeaderSize + len(keyTable) + entrySection.Len()), //nolint: gosec
		PayloadSize:   uint32(payload.Len()),                                           //nolint: gosec
		PayloadDigest: digest,
		ElementCount:  uint32(d.Size()), //nolint: gosec
		Flag:          flag,
	}

	out := make([]byte, 0, section.HeaderSize+len(keyTable)+entrySection.Len()+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, keyTable...)
	out = append(out, entrySection.Bytes()...)
	out = append(out, compressed...)

	return out, nil
}

// encodePayload writes the uncompressed payload bytes into a pooled buffer
// and stamps the chosen payload kind into flag.
func (e *Encoder[T]) encodePayload(d *dict.Dict[T], flag *section.Flag) (*pool.ByteBuffer, error) {
	buf := d.Flat()

	// Probe the element type: float64 buffers serialize directly.
	if floats, ok := any(buf).([]float64); ok {
		flag.SetPayload(format.PayloadPlain)

		payload := pool.GetSnapshotBuffer()
		payload.Grow(len(floats) * section.ElementSize)
		for _, v := range floats {
			payload.B = e.engine.AppendUint64(payload.B, math.Float64bits(v))
		}

		return payload, nil
	}

	if e.dec == nil {
		var zero T
		return nil, fmt.Errorf("%w: element type %T is not directly serializable", errs.ErrNoDecomposer, zero)
	}

	flag.SetPayload(format.PayloadDecomposed)

	n := len(buf)

	mean := e.dec.Mean(buf)
	if len(mean) != n {
		return nil, fmt.Errorf("%w: decomposer returned %d means for %d elements",
			errs.ErrSizeMismatch, len(mean), n)
	}

	cov, err := e.dec.Covariance(buf)
	if err != nil {
		return nil, err
	}
	if len(cov) != n {
		return nil, fmt.Errorf("%w: %d rows for %d elements", errs.ErrInvalidCovariance, len(cov), n)
	}

	payload := pool.GetSnapshotBuffer()
	payload.Grow((n + n*n) * section.ElementSize)
	for _, v := range mean {
		payload.B = e.engine.AppendUint64(payload.B, math.Float64bits(v))
	}
	for i, row := range cov {
		if len(row) != n {
			pool.PutSnapshotBuffer(payload)
			return nil, fmt.Errorf("%w: row %d has %d columns for %d elements",
				errs.ErrInvalidCovariance, i, len(row), n)
		}
		for _, v := range row {
			payload.B = e.engine.AppendUint64(payload.B, math.Float64bits(v))
		}
	}

	return payload, nil
}

// Marshal serializes a float64 dictionary using the plain payload.
func Marshal(d *dict.Dict[float64], opts ...Option) ([]byte, error) {
	encoder, err := NewEncoder[float64](nil, opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Marshal(d)
}

// MarshalWith serializes a dictionary of an opaque element type, decomposing
// its buffer into mean + covariance through dec.
func MarshalWith[T any](d *dict.Dict[T], dec Decomposer[T], opts ...Option) ([]byte, error) {
	encoder, err := NewEncoder(dec, opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Marshal(d)
}
