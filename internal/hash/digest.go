// Package hash provides the payload digest used by the snapshot format.
package hash

import "github.com/cespare/xxhash/v2"

// Digest computes the xxHash64 of the given payload bytes.
//
// The digest is computed over the uncompressed payload and stored in the
// snapshot header so decoders can detect corruption after decompression.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
