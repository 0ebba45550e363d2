package codec

import (
	"fmt"

	"github.com/arloliu/bufdict/format"
	"github.com/arloliu/bufdict/internal/options"
	"github.com/arloliu/bufdict/section"
)

// config carries the encode-time knobs: byte order and payload compression.
type config struct {
	flag section.Flag
}

func newConfig() *config {
	return &config{flag: section.NewFlag()}
}

// Option is a functional option for snapshot encoding.
type Option = options.Option[*config]

// WithLittleEndian encodes the snapshot in little-endian byte order (default).
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.flag.WithLittleEndian()
	})
}

// WithBigEndian encodes the snapshot in big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.flag.WithBigEndian()
	})
}

// WithCompression selects the payload compression algorithm.
// The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.flag.SetCompression(compression)
			return nil
		default:
			return fmt.Errorf("invalid payload compression: %s", compression)
		}
	})
}
