package section

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bufdict/endian"
	"github.com/arloliu/bufdict/errs"
)

func TestFieldEntry_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	entries := []FieldEntry{
		{Start: 0, Shape: nil},             // scalar
		{Start: 1, Shape: []int{3}},        // vector
		{Start: 4, Shape: []int{2, 3}},     // matrix
		{Start: 10, Shape: []int{4, 1, 2}}, // rank 3
	}

	var buf bytes.Buffer
	for _, entry := range entries {
		require.NoError(t, entry.WriteTo(&buf, engine))
	}

	data := buf.Bytes()
	offset := 0
	for _, want := range entries {
		got, next, err := ParseFieldEntry(data, offset, engine)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, offset+want.EncodedSize(), next)
		offset = next
	}
	require.Equal(t, len(data), offset)
}

func TestFieldEntry_RoundTripBigEndian(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	entry := FieldEntry{Start: 7, Shape: []int{5, 2}}

	var buf bytes.Buffer
	require.NoError(t, entry.WriteTo(&buf, engine))

	got, next, err := ParseFieldEntry(buf.Bytes(), 0, engine)
	require.NoError(t, err)
	require.Equal(t, entry, got)
	require.Equal(t, buf.Len(), next)
}

func TestFieldEntry_Count(t *testing.T) {
	require.Equal(t, 1, FieldEntry{}.Count())
	require.True(t, FieldEntry{}.IsScalar())

	entry := FieldEntry{Shape: []int{2, 3, 4}}
	require.Equal(t, 24, entry.Count())
	require.False(t, entry.IsScalar())
}

func TestFieldEntry_WriteRankTooLarge(t *testing.T) {
	entry := FieldEntry{Shape: make([]int, MaxRank+1)}

	var buf bytes.Buffer
	err := entry.WriteTo(&buf, endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidFieldEntry)
}

func TestParseFieldEntry_Errors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("truncated entry", func(t *testing.T) {
		_, _, err := ParseFieldEntry([]byte{0, 0, 0}, 0, engine)
		require.ErrorIs(t, err, errs.ErrInvalidFieldEntry)
	})

	t.Run("truncated dims", func(t *testing.T) {
		// rank 2 but only one dim present
		data := []byte{0, 0, 0, 0, 2, 3, 0, 0, 0}
		_, _, err := ParseFieldEntry(data, 0, engine)
		require.ErrorIs(t, err, errs.ErrInvalidFieldEntry)
	})

	t.Run("zero rank", func(t *testing.T) {
		data := []byte{0, 0, 0, 0, 0}
		_, _, err := ParseFieldEntry(data, 0, engine)
		require.ErrorIs(t, err, errs.ErrInvalidFieldEntry)
	})

	t.Run("zero dimension", func(t *testing.T) {
		data := []byte{0, 0, 0, 0, 1, 0, 0, 0, 0}
		_, _, err := ParseFieldEntry(data, 0, engine)
		require.ErrorIs(t, err, errs.ErrInvalidFieldEntry)
	})

	t.Run("dimension product overflow", func(t *testing.T) {
		// dims [2^31, 2^31, 4]: the product wraps a 64-bit int to 0, which
		// would slip through the decoder's contiguity checks.
		var buf bytes.Buffer
		buf.Write([]byte{0, 0, 0, 0}) // start
		buf.WriteByte(3)              // rank
		for _, dim := range []uint32{1 << 31, 1 << 31, 4} {
			var scratch [4]byte
			engine.PutUint32(scratch[:], dim)
			buf.Write(scratch[:])
		}

		_, _, err := ParseFieldEntry(buf.Bytes(), 0, engine)
		require.ErrorIs(t, err, errs.ErrInvalidFieldEntry)
	})
}

func TestFieldEntry_WriteElementCountTooLarge(t *testing.T) {
	entry := FieldEntry{Shape: []int{1 << 31, 1 << 31, 4}}

	var buf bytes.Buffer
	err := entry.WriteTo(&buf, endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidFieldEntry)
}

func TestFieldEntry_CountSaturates(t *testing.T) {
	entry := FieldEntry{Shape: []int{1 << 62, 1 << 62}}
	require.Equal(t, math.MaxInt, entry.Count())
}
