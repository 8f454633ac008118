// Package distance provides the Euclidean distance calculations used by the
// k-means and k-NN pipelines.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance (used to rank centroids and neighbors)
//   - MetricSquaredL2: Squared Euclidean distance (used by variance metrics)
//
// # Usage
//
//	d, err := distance.Euclidean(a, b)
//	d2, err := distance.SquaredEuclidean(a, b)
//
// Both functions reject vectors of different length with *ErrDimensionMismatch.
package distance
