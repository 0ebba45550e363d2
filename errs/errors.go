// Package errs defines the sentinel errors shared across bufdict packages.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is after any amount of fmt.Errorf("%w: ...") wrapping.
package errs

import "errors"

// Dictionary errors.
var (
	// ErrUnknownKey is returned when a key is not present in the dictionary.
	ErrUnknownKey = errors.New("unknown key")

	// ErrDuplicateKey is returned by Add when the key already exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrShapeMismatch is returned when a value's shape is incompatible with
	// the shape recorded for an existing key, or when an explicit shape does
	// not match the number of elements provided.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrSizeMismatch is returned when a replacement buffer's length differs
	// from the dictionary's total element count.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrRankMismatch is returned when a replacement buffer is not rank 1.
	ErrRankMismatch = errors.New("rank mismatch")

	// ErrInvalidShape is returned when a shape contains non-positive dimensions.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidArguments is returned by construction helpers when the input
	// is not one of the supported forms.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrUnsupportedOperation is returned by any attempt to delete a key.
	// Keys are never removed; this keeps every descriptor (and any externally
	// held buffer slice) valid for the dictionary's lifetime.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Snapshot codec errors.
var (
	// ErrInvalidHeaderSize is returned when the snapshot data is shorter than
	// the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber is returned when the header magic does not match
	// the snapshot format.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidPayloadType is returned when the header carries an unknown
	// payload type tag.
	ErrInvalidPayloadType = errors.New("invalid payload type")

	// ErrInvalidCompressionType is returned when the header carries an
	// unknown compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrInvalidKeyTable is returned when the key table section is truncated
	// or malformed.
	ErrInvalidKeyTable = errors.New("invalid key table")

	// ErrInvalidFieldEntry is returned when a field entry is truncated,
	// out of order, or inconsistent with the payload size.
	ErrInvalidFieldEntry = errors.New("invalid field entry")

	// ErrPayloadSizeMismatch is returned when the decompressed payload length
	// differs from the size recorded in the header.
	ErrPayloadSizeMismatch = errors.New("payload size mismatch")

	// ErrChecksumMismatch is returned when the payload digest does not match
	// the header digest.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrNoDecomposer is returned when a decomposed snapshot is decoded, or a
	// non-float64 dictionary is encoded, without a Decomposer.
	ErrNoDecomposer = errors.New("no decomposer provided")

	// ErrUnsupportedElementType is returned when the element type can be
	// handled neither by the plain payload nor by a Decomposer.
	ErrUnsupportedElementType = errors.New("unsupported element type")

	// ErrKeyTooLong is returned when a key exceeds the key table limit.
	ErrKeyTooLong = errors.New("key too long")

	// ErrTooManyEntries is returned when the dictionary exceeds the entry
	// count representable in the snapshot format.
	ErrTooManyEntries = errors.New("too many entries")

	// ErrInvalidCovariance is returned when a Decomposer yields or receives a
	// covariance matrix that is not square with one row per element.
	ErrInvalidCovariance = errors.New("invalid covariance matrix")
)
