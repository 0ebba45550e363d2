package format

type (
	PayloadType     uint8
	CompressionType uint8
)

const (
	PayloadPlain      PayloadType = 0x1 // PayloadPlain stores raw float64 element bits.
	PayloadDecomposed PayloadType = 0x2 // PayloadDecomposed stores mean vector + covariance matrix.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (p PayloadType) String() string {
	switch p {
	case PayloadPlain:
		return "Plain"
	case PayloadDecomposed:
		return "Decomposed"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
