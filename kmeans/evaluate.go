package kmeans

import (
	"fmt"

	"github.com/hupe1980/kvec/distance"
	"github.com/hupe1980/kvec/internal/errs"
	"github.com/hupe1980/kvec/model"
)

// Evaluation holds the clustering quality metrics.
type Evaluation struct {
	// Intra is the intra-cluster variance.
	Intra float64 `json:"intra_cluster_variance"`
	// Inter is the inter-cluster variance.
	Inter float64 `json:"inter_cluster_variance"`
	// Score is Inter / Intra; higher means better separation.
	Score float64 `json:"score"`
}

// IntraClusterVariance returns the sum over all items of the squared distance
// to their own centroid, divided by the total number of items.
func IntraClusterVariance(vectors []model.Vector, centroids []model.Vector, clusters []Cluster) (float64, error) {
	n := len(vectors)
	if n == 0 {
		return 0, ErrNoVectors
	}
	if len(clusters) != len(centroids) {
		return 0, fmt.Errorf("%w: %d clusters for %d centroids", errs.ErrInvalidArgument, len(clusters), len(centroids))
	}

	var sum float64
	for c, center := range centroids {
		for _, idx := range clusters[c] {
			if idx < 0 || idx >= n {
				return 0, fmt.Errorf("%w: cluster %d member %d out of range", errs.ErrInvalidArgument, c, idx)
			}
			d, err := distance.SquaredEuclidean(center, vectors[idx])
			if err != nil {
				return 0, err
			}
			sum += d
		}
	}
	return sum / float64(n), nil
}

// InterClusterVariance returns the mean squared distance over all unordered
// pairs of distinct centroids. It requires at least two centroids.
func InterClusterVariance(centroids []model.Vector) (float64, error) {
	k := len(centroids)
	if k < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewClusters, k)
	}

	var sum float64
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			d, err := distance.SquaredEuclidean(centroids[i], centroids[j])
			if err != nil {
				return 0, err
			}
			sum += d
		}
	}
	pairs := float64(k*(k-1)) / 2
	return sum / pairs, nil
}

// Score returns inter / intra. A zero intra-cluster variance yields ErrZeroVariance.
func Score(inter, intra float64) (float64, error) {
	if intra == 0 {
		return 0, ErrZeroVariance
	}
	return inter / intra, nil
}

// Evaluate computes intra-cluster variance, inter-cluster variance and their ratio.
func Evaluate(vectors []model.Vector, centroids []model.Vector, clusters []Cluster) (Evaluation, error) {
	intra, err := IntraClusterVariance(vectors, centroids, clusters)
	if err != nil {
		return Evaluation{}, err
	}
	inter, err := InterClusterVariance(centroids)
	if err != nil {
		return Evaluation{}, err
	}
	score, err := Score(inter, intra)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{Intra: intra, Inter: inter, Score: score}, nil
}
