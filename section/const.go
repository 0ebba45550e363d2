package section

import (
	"math"

	"github.com/arloliu/bufdict/format"
)

const (
	// Bit masks for the packed Options field.
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0): 0=little, 1=big
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3), must be 0
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicSnapshotV1Opt is the version 1 magic number for the snapshot format.
	MagicSnapshotV1Opt = 0xBD10

	// Payload types - using format package constants.
	PayloadTypePlain      = uint8(format.PayloadPlain)
	PayloadTypeDecomposed = uint8(format.PayloadDecomposed)

	// Payload compression - using format package constants.
	PayloadCompressionNone = uint8(format.CompressionNone)
	PayloadCompressionZstd = uint8(format.CompressionZstd)
	PayloadCompressionS2   = uint8(format.CompressionS2)
	PayloadCompressionLZ4  = uint8(format.CompressionLZ4)
)

// Offsets and section sizes in the snapshot.
const (
	HeaderSize      = 32             // fixed header size in bytes
	KeyTableOffset  = HeaderSize     // byte offset where the key table starts
	MaxEntryCount   = math.MaxUint16 // maximum number of field entries per snapshot
	MaxElementCount = math.MaxUint32 // maximum total element count per snapshot

	// ScalarRank is the rank byte that marks a scalar field entry
	// (the "no shape" sentinel); real ranks are 1..MaxRank.
	ScalarRank = 0xFF

	// MaxRank is the maximum number of dimensions a field shape may have.
	MaxRank = 0xFE

	// ElementSize is the encoded size of one float64 element in bytes.
	ElementSize = 8
)
