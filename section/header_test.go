package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bufdict/errs"
	"github.com/arloliu/bufdict/format"
)

func TestHeader_RoundTrip(t *testing.T) {
	header := NewHeader()
	header.EntryCount = 3
	header.PayloadOffset = 96
	header.PayloadSize = 80
	header.PayloadDigest = 0xDEADBEEFCAFEF00D
	header.ElementCount = 10
	header.Flag.SetPayload(format.PayloadDecomposed)
	header.Flag.SetCompression(format.CompressionZstd)

	data := header.Bytes()
	require.Len(t, data, HeaderSize)

	parsed, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, *header, parsed)
}

func TestHeader_RoundTripBigEndian(t *testing.T) {
	header := NewHeader()
	header.Flag.WithBigEndian()
	header.EntryCount = 1
	header.PayloadOffset = 48
	header.PayloadSize = 8
	header.PayloadDigest = 0x0123456789ABCDEF
	header.ElementCount = 1

	data := header.Bytes()

	parsed, err := ParseHeader(data)
	require.NoError(t, err)
	require.True(t, parsed.Flag.IsBigEndian())
	require.Equal(t, *header, parsed)
}

func TestHeader_ParseTruncated(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestHeader_ParseBadMagic(t *testing.T) {
	data := NewHeader().Bytes()
	data[1] = 0x00

	_, err := ParseHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestFlag_Defaults(t *testing.T) {
	flag := NewFlag()
	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.IsBigEndian())
	require.Equal(t, uint16(MagicSnapshotV1Opt), flag.GetMagicNumber())
	require.Equal(t, format.PayloadPlain, flag.Payload())
	require.Equal(t, format.CompressionNone, flag.Compression())
	require.NoError(t, flag.Validate())
}

func TestFlag_EndiannessToggle(t *testing.T) {
	flag := NewFlag()
	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.Equal(t, uint16(MagicSnapshotV1Opt), flag.GetMagicNumber())

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
}

func TestFlag_Validate(t *testing.T) {
	t.Run("reserved bits", func(t *testing.T) {
		flag := NewFlag()
		flag.Options |= 0x0002

		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidMagicNumber)
	})

	t.Run("payload type", func(t *testing.T) {
		flag := NewFlag()
		flag.PayloadType = 0x7F

		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidPayloadType)
	})

	t.Run("compression type", func(t *testing.T) {
		flag := NewFlag()
		flag.CompressionType = 0x7F

		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidCompressionType)
	})
}
