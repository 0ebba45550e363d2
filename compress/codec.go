package compress

import (
	"fmt"

	"github.com/arloliu/bufdict/format"
)

// Compressor compresses snapshot payload bytes.
//
// The input is a complete payload section (raw float64 bits or a decomposed
// mean+covariance block). The returned slice is newly allocated and owned by
// the caller; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor. It returns an error if the data is corrupted or was compressed
// with an incompatible algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
