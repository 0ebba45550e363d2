package compress

// NoOpCompressor bypasses data without compression.
//
// Useful when the payload is small, incompressible, or when CPU matters more
// than snapshot size. It is also the baseline for benchmarks.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without processing or copying.
//
// Note: the returned slice shares memory with the input. Callers must not
// modify the input afterwards if they plan to use the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without processing or copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
