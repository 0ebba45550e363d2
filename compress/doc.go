// Package compress provides compression codecs for bufdict snapshot payloads.
//
// Compression is applied to the payload section only (the raw float64 bits or
// the decomposed mean+covariance block); the header, key table, and field
// entries stay uncompressed so snapshots can be inspected without decoding
// the payload.
//
// # Supported algorithms
//
//   - None (format.CompressionNone): no compression, zero overhead.
//   - Zstd (format.CompressionZstd): best ratio; cgo binding when available,
//     pure Go otherwise.
//   - S2 (format.CompressionS2): balanced ratio and speed.
//   - LZ4 (format.CompressionLZ4): fastest decompression, moderate ratio.
//
// Covariance payloads in particular compress well: for weakly correlated
// data the matrix is sparse-ish (many near-zero off-diagonal entries), so
// Zstd routinely shrinks the N×N block by an order of magnitude.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// Decoders select the matching codec from the snapshot header automatically;
// callers only choose an algorithm at encode time.
//
// All codec implementations are stateless or internally pooled and safe for
// concurrent use.
package compress
