// Package codec persists dictionaries as portable binary snapshots.
//
// A snapshot carries the dictionary's three pieces of state - insertion-
// ordered keys, field entries (descriptor span/shape tuples in a stable wire
// form independent of the in-memory Descriptor type), and the flat buffer -
// in one self-describing byte slice:
//
//	header (32 B) | key table | field entries | payload
//
// The header records endianness, payload kind, compression, and an xxHash64
// digest of the uncompressed payload. Only the payload section is compressed,
// so Inspect can report keys and shapes without decoding values.
//
// # Payload kinds
//
// Two payload representations exist, selected at encode time by probing the
// buffer's element type and tagged explicitly in the header:
//
//   - Plain: raw float64 bits, 8 bytes per element. Used when the element
//     type is float64. Round trips are exact.
//   - Decomposed: the elementwise mean vector followed by the full
//     covariance matrix, row-major. Used for opaque element types that
//     cannot be serialized directly but can be decomposed into and rebuilt
//     from those statistics (values carrying correlated uncertainty, for
//     example). Decoding rebuilds elements statistically equivalent to - not
//     necessarily identical to - the originals.
//
// The codec never touches a concrete opaque type: both directions go through
// the Decomposer capability interface supplied by the caller.
//
// # Usage
//
//	data, err := codec.Marshal(d, codec.WithCompression(format.CompressionZstd))
//	...
//	restored, err := codec.Unmarshal(data)
//
// For opaque element types:
//
//	data, err := codec.MarshalWith(d, dec)
//	restored, err := codec.UnmarshalWith[U](data, dec)
package codec
