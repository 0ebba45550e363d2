package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	data := []byte("buffer dictionary payload")

	d1 := Digest(data)
	d2 := Digest(data)
	require.Equal(t, d1, d2)

	mutated := append([]byte(nil), data...)
	mutated[0] ^= 0x01
	require.NotEqual(t, d1, Digest(mutated))
}

func TestDigest_Empty(t *testing.T) {
	require.Equal(t, Digest(nil), Digest([]byte{}))
}
