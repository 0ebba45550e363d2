package bufdict

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bufdict/codec"
	"github.com/arloliu/bufdict/errs"
	"github.com/arloliu/bufdict/format"
)

// TestBuildFlattenRebuild exercises the central workflow: build a dictionary,
// hand its flat buffer to bulk numeric code, and view the transformed result
// through the original layout.
func TestBuildFlattenRebuild(t *testing.T) {
	d := New[float64]()
	require.NoError(t, d.SetScalar("bias", 0.5))
	require.NoError(t, d.Set("weights", Vector([]float64{1, 2, 3})))

	// Bulk transform over the flat view.
	flat := d.Flatten()
	for i := range flat {
		flat[i] *= 10
	}

	view, err := WithBuffer(d, flat)
	require.NoError(t, err)

	bias, err := view.GetScalar("bias")
	require.NoError(t, err)
	require.Equal(t, 5.0, bias)

	weights, err := view.Get("weights")
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20, 30}, weights.Flat())

	// The original dictionary is untouched.
	origBias, err := d.GetScalar("bias")
	require.NoError(t, err)
	require.Equal(t, 0.5, origBias)
}

func TestFrom_MapConstruction(t *testing.T) {
	d, err := From[float64](map[string]float64{"z": 3, "a": 1, "m": 2})
	require.NoError(t, err)

	keys := make([]string, 0, d.Len())
	for key := range d.Keys() {
		keys = append(keys, key)
	}
	require.Equal(t, []string{"a", "m", "z"}, keys)
	require.Equal(t, []float64{1, 2, 3}, d.Flatten())
}

func TestFrom_PairConstruction(t *testing.T) {
	d, err := From[float64]([]Pair[float64]{
		{Key: "z", Value: Scalar(3.0)},
		{Key: "a", Value: Vector([]float64{1, 2})},
	})
	require.NoError(t, err)

	first, err := d.KeyAt(0)
	require.NoError(t, err)
	require.Equal(t, "z", first)

	second, err := d.KeyAt(1)
	require.NoError(t, err)
	require.Equal(t, "a", second)
	require.Equal(t, []float64{3, 1, 2}, d.Flatten())
}

func TestClone_Independence(t *testing.T) {
	d := New[float64]()
	require.NoError(t, d.SetScalar("x", 1.0))

	clone := Clone(d)
	require.NoError(t, clone.SetScalar("x", 2.0))

	x, err := d.GetScalar("x")
	require.NoError(t, err)
	require.Equal(t, 1.0, x)
}

func TestSnapshotRoundTrip(t *testing.T) {
	d := New[float64]()
	require.NoError(t, d.SetScalar("bias", -1.25))

	grid, err := NewArray([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Set("grid", grid))

	data, err := Marshal(d, codec.WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	restored, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, d.Flatten(), restored.Flatten())

	restoredGrid, err := restored.Get("grid")
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, restoredGrid.Shape())

	v, err := restoredGrid.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

func TestDelete_NotSupported(t *testing.T) {
	d := New[float64]()
	require.NoError(t, d.SetScalar("x", 1.0))

	require.ErrorIs(t, d.Delete("x"), errs.ErrUnsupportedOperation)
	require.True(t, d.Has("x"))
}
