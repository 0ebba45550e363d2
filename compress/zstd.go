package compress

// ZstdCompressor provides Zstandard compression for snapshot payloads.
//
// It offers the best compression ratio of the built-in codecs and is the
// right choice for archived snapshots or network transfer. Two backends are
// provided: a cgo binding (valyala/gozstd) when cgo is available, and a pure
// Go implementation (klauspost/compress/zstd) otherwise. Both produce
// standard zstd frames and can decode each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
