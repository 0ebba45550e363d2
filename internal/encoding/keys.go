// Package encoding implements the length-prefixed key table used by the
// snapshot format.
package encoding

import (
	"fmt"

	"github.com/arloliu/bufdict/endian"
	"github.com/arloliu/bufdict/errs"
)

const (
	// MaxKeyLength is the maximum byte length of a single key, limited by the
	// uint16 length prefix.
	MaxKeyLength = 65535

	// MaxKeyCount is the maximum number of keys per snapshot, limited by the
	// uint16 count prefix.
	MaxKeyCount = 65535
)

// EncodeKeys encodes an ordered list of keys into a length-prefixed binary
// key table.
//
// Format: [Count: uint16] [Len1: uint16][Key1: UTF-8] [Len2: uint16][Key2: UTF-8] ...
//
// The order of keys is significant: it is the dictionary's insertion order
// and lines up one-to-one with the field entry section.
func EncodeKeys(keys []string, engine endian.EndianEngine) ([]byte, error) {
	if len(keys) > MaxKeyCount {
		return nil, fmt.Errorf("%w: key count %d exceeds maximum %d", errs.ErrTooManyEntries, len(keys), MaxKeyCount)
	}

	totalSize := 2
	for _, key := range keys {
		if len(key) > MaxKeyLength {
			return nil, fmt.Errorf("%w: key %q is %d bytes, maximum %d", errs.ErrKeyTooLong, key, len(key), MaxKeyLength)
		}
		totalSize += 2 + len(key)
	}

	buf := make([]byte, totalSize)
	offset := 0

	engine.PutUint16(buf[offset:], uint16(len(keys))) //nolint: gosec
	offset += 2

	for _, key := range keys {
		engine.PutUint16(buf[offset:], uint16(len(key))) //nolint: gosec
		offset += 2

		copy(buf[offset:], key)
		offset += len(key)
	}

	return buf, nil
}

// DecodeKeys decodes a length-prefixed key table.
//
// Returns the keys in stored order and the number of bytes consumed.
func DecodeKeys(data []byte, engine endian.EndianEngine) ([]string, int, error) {
	offset := 0

	if len(data) < offset+2 {
		return nil, 0, fmt.Errorf("%w: cannot read key count (need 2 bytes, have %d)", errs.ErrInvalidKeyTable, len(data))
	}

	count := engine.Uint16(data[offset:])
	offset += 2

	keys := make([]string, count)

	for i := range int(count) {
		if len(data) < offset+2 {
			return nil, 0, fmt.Errorf("%w: cannot read length for key %d at offset %d", errs.ErrInvalidKeyTable, i, offset)
		}

		keyLen := int(engine.Uint16(data[offset:]))
		offset += 2

		if len(data) < offset+keyLen {
			return nil, 0, fmt.Errorf("%w: cannot read key %d (need %d bytes at offset %d, have %d total)",
				errs.ErrInvalidKeyTable, i, keyLen, offset, len(data))
		}

		keys[i] = string(data[offset : offset+keyLen])
		offset += keyLen
	}

	return keys, offset, nil
}
