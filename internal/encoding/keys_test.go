package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bufdict/endian"
	"github.com/arloliu/bufdict/errs"
)

func TestEncodeDecodeKeys(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little-endian": endian.GetLittleEndianEngine(),
		"big-endian":    endian.GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			keys := []string{"offset", "weights", "grid", "", "日本語キー"}

			data, err := EncodeKeys(keys, engine)
			require.NoError(t, err)

			decoded, consumed, err := DecodeKeys(data, engine)
			require.NoError(t, err)
			require.Equal(t, keys, decoded)
			require.Equal(t, len(data), consumed)
		})
	}
}

func TestEncodeDecodeKeys_Empty(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	data, err := EncodeKeys(nil, engine)
	require.NoError(t, err)
	require.Len(t, data, 2)

	decoded, consumed, err := DecodeKeys(data, engine)
	require.NoError(t, err)
	require.Empty(t, decoded)
	require.Equal(t, 2, consumed)
}

func TestEncodeKeys_KeyTooLong(t *testing.T) {
	keys := []string{strings.Repeat("k", MaxKeyLength+1)}

	_, err := EncodeKeys(keys, endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrKeyTooLong)
}

func TestDecodeKeys_Truncated(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("missing count", func(t *testing.T) {
		_, _, err := DecodeKeys([]byte{0x01}, engine)
		require.ErrorIs(t, err, errs.ErrInvalidKeyTable)
	})

	t.Run("missing key length", func(t *testing.T) {
		data, err := EncodeKeys([]string{"abc"}, engine)
		require.NoError(t, err)

		_, _, err = DecodeKeys(data[:3], engine)
		require.ErrorIs(t, err, errs.ErrInvalidKeyTable)
	})

	t.Run("missing key bytes", func(t *testing.T) {
		data, err := EncodeKeys([]string{"abc"}, engine)
		require.NoError(t, err)

		_, _, err = DecodeKeys(data[:len(data)-1], engine)
		require.ErrorIs(t, err, errs.ErrInvalidKeyTable)
	})
}

func TestDecodeKeys_ConsumesOnlyTable(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	data, err := EncodeKeys([]string{"a", "bb"}, engine)
	require.NoError(t, err)

	// trailing bytes belong to the next section and must not be consumed
	padded := append(data, 0xFF, 0xFF, 0xFF)

	decoded, consumed, err := DecodeKeys(padded, engine)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "bb"}, decoded)
	require.Equal(t, len(data), consumed)
}
