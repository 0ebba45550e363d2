package section

import (
	"fmt"

	"github.com/arloliu/bufdict/endian"
	"github.com/arloliu/bufdict/errs"
	"github.com/arloliu/bufdict/format"
)

// Flag represents the packed flag field at the start of the snapshot header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved and must be 0.
	// Bits 4-15 are the magic number identifying the snapshot format:
	//   - 0xBD10: buffer dictionary snapshot format v1
	//
	// The Options field itself is always encoded little-endian so decoders
	// can read the endianness bit before choosing an engine.
	Options uint16

	// PayloadType is an enum indicating how element values are persisted:
	// plain float64 bits, or a decomposed mean+covariance block.
	PayloadType uint8

	// CompressionType is an enum indicating the payload compression.
	CompressionType uint8
}

var validPayloadTypes = map[uint8]struct{}{
	PayloadTypePlain:      {},
	PayloadTypeDecomposed: {},
}

var validCompressions = map[uint8]struct{}{
	PayloadCompressionNone: {},
	PayloadCompressionZstd: {},
	PayloadCompressionS2:   {},
	PayloadCompressionLZ4:  {},
}

// NewFlag creates a new Flag with default settings: little-endian, plain
// payload, no compression.
func NewFlag() Flag {
	flag := Flag{
		Options:         MagicSnapshotV1Opt,
		PayloadType:     PayloadTypePlain,
		CompressionType: PayloadCompressionNone,
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the snapshot data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the snapshot data is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Payload returns the payload type as a format enum.
func (f Flag) Payload() format.PayloadType {
	return format.PayloadType(f.PayloadType)
}

// SetPayload sets the payload type.
func (f *Flag) SetPayload(p format.PayloadType) {
	f.PayloadType = uint8(p)
}

// Compression returns the compression type as a format enum.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number, reserved bits, payload type and
// compression type.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicSnapshotV1Opt {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved option bits set", errs.ErrInvalidMagicNumber)
	}

	if _, ok := validPayloadTypes[f.PayloadType]; !ok {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidPayloadType, f.PayloadType)
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, f.CompressionType)
	}

	return nil
}
