package codec

// Decomposer is the capability set an opaque element type must provide to be
// persisted. The codec depends only on this interface, never on a concrete
// element type: Mean and Covariance decompose a buffer into generically
// serializable statistics at encode time, and Compose rebuilds a buffer from
// them at decode time.
//
// Contract: for a buffer of n elements, Mean returns n values and Covariance
// returns an n×n matrix (row i, column j is the covariance of elements i and
// j). Compose is the inverse direction and returns exactly n elements; the
// rebuilt elements must be statistically equivalent to the originals, not
// necessarily identical objects.
type Decomposer[T any] interface {
	// Mean extracts the elementwise central values of the buffer.
	Mean(values []T) []float64

	// Covariance extracts the full covariance matrix across the buffer.
	Covariance(values []T) ([][]float64, error)

	// Compose rebuilds a buffer from a mean vector and covariance matrix.
	Compose(mean []float64, cov [][]float64) ([]T, error)
}
