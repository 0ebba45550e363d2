package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bufdict/format"
)

func testPayload() []byte {
	// Repetitive enough that every real algorithm shrinks it.
	payload := make([]byte, 0, 4096)
	chunk := []byte{0x3F, 0xF0, 0, 0, 0, 0, 0, 0}
	for range 512 {
		payload = append(payload, chunk...)
	}

	return payload
}

func TestCodec_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			payload := testPayload()

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))
		})
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for compression := range map[format.CompressionType]struct{}{
		format.CompressionNone: {},
		format.CompressionZstd: {},
		format.CompressionS2:   {},
		format.CompressionLZ4:  {},
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Nil(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, restored)
	}
}

func TestCodec_CompressesRepetitiveData(t *testing.T) {
	payload := testPayload()

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should shrink repetitive data", compression)
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x7F))
	require.Error(t, err)
}

func TestNoOp_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestDecompress_CorruptedData(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, "%s should reject garbage", compression)
	}
}
