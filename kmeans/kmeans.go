package kmeans

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kvec/distance"
	"github.com/hupe1980/kvec/internal/errs"
	"github.com/hupe1980/kvec/internal/selection"
	"github.com/hupe1980/kvec/model"
)

// Source supplies uniformly distributed indices. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a pseudo-random number in [0, n).
	Intn(n int) int
}

// Cluster holds the indices of the items assigned to one centroid, ascending.
type Cluster []int

// EmptyClusterPolicy decides what Update does with a cluster that has no members.
type EmptyClusterPolicy int

const (
	// EmptyClusterFail aborts the update with *EmptyClusterError.
	EmptyClusterFail EmptyClusterPolicy = iota
	// EmptyClusterKeep retains the previous centroid of the empty cluster.
	EmptyClusterKeep
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case EmptyClusterFail:
		return "fail"
	case EmptyClusterKeep:
		return "keep"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// ParseEmptyClusterPolicy parses "fail" or "keep". The empty string means "fail".
func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	switch s {
	case "", "fail", "error":
		return EmptyClusterFail, nil
	case "keep":
		return EmptyClusterKeep, nil
	default:
		return 0, fmt.Errorf("%w: unknown empty cluster policy %q", errs.ErrInvalidArgument, s)
	}
}

// InitCentroids selects k distinct vectors at random as initial centroids.
//
// Indices are drawn uniformly from [0, n) and redrawn when already selected;
// the returned indices are in acceptance order. Centroids are copies.
func InitCentroids(src Source, vectors []model.Vector, k int) ([]model.Vector, []int, error) {
	n := len(vectors)
	if n == 0 {
		return nil, nil, ErrNoVectors
	}
	if k < 1 {
		return nil, nil, fmt.Errorf("%w: k=%d must be at least 1", ErrInvalidK, k)
	}
	if k > n {
		return nil, nil, fmt.Errorf("%w: k=%d exceeds dataset size %d", ErrInvalidK, k, n)
	}

	selected := selection.New()
	indices := make([]int, 0, k)
	for len(indices) < k {
		idx := src.Intn(n)
		if selected.Add(idx) {
			indices = append(indices, idx)
		}
	}

	centroids := make([]model.Vector, k)
	for i, idx := range indices {
		centroids[i] = vectors[idx].Clone()
	}
	return centroids, indices, nil
}

// Assign assigns every vector to its nearest centroid.
//
// Centroids are scanned in index order and a distance less than or equal to the
// running minimum replaces it, so exact ties go to the later centroid.
// Clusters may be empty.
func Assign(vectors []model.Vector, centroids []model.Vector) ([]Cluster, error) {
	k := len(centroids)
	if k == 0 {
		return nil, ErrNoCentroids
	}

	clusters := make([]Cluster, k)
	for i := range clusters {
		clusters[i] = Cluster{}
	}

	for idx, v := range vectors {
		best := 0
		minDist := math.Inf(1)
		for c, center := range centroids {
			d, err := distance.Euclidean(v, center)
			if err != nil {
				return nil, fmt.Errorf("assign item %d to centroid %d: %w", idx, c, err)
			}
			if d <= minDist {
				minDist = d
				best = c
			}
		}
		clusters[best] = append(clusters[best], idx)
	}
	return clusters, nil
}

// Update recomputes each centroid as the component-wise mean of its members.
//
// previous is consulted only by EmptyClusterKeep and may be nil otherwise.
func Update(vectors []model.Vector, clusters []Cluster, previous []model.Vector, policy EmptyClusterPolicy) ([]model.Vector, error) {
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}
	dim := len(vectors[0])

	centroids := make([]model.Vector, len(clusters))
	for c, members := range clusters {
		if len(members) == 0 {
			if policy != EmptyClusterKeep {
				return nil, &EmptyClusterError{Cluster: c}
			}
			if c >= len(previous) {
				return nil, fmt.Errorf("%w: no previous centroid for empty cluster %d", errs.ErrInvalidArgument, c)
			}
			centroids[c] = previous[c].Clone()
			continue
		}

		center := make(model.Vector, dim)
		for _, idx := range members {
			if idx < 0 || idx >= len(vectors) {
				return nil, fmt.Errorf("%w: cluster %d member %d out of range", errs.ErrInvalidArgument, c, idx)
			}
			if len(vectors[idx]) != dim {
				return nil, &distance.ErrDimensionMismatch{Left: dim, Right: len(vectors[idx])}
			}
			floats.Add(center, vectors[idx])
		}
		count := float64(len(members))
		for i := range center {
			center[i] /= count
		}
		centroids[c] = center
	}
	return centroids, nil
}

// Iterate runs one assignment and one update step from the given centroids.
func Iterate(vectors []model.Vector, centroids []model.Vector, policy EmptyClusterPolicy) ([]Cluster, []model.Vector, error) {
	clusters, err := Assign(vectors, centroids)
	if err != nil {
		return nil, nil, err
	}
	next, err := Update(vectors, clusters, centroids, policy)
	if err != nil {
		return nil, nil, err
	}
	return clusters, next, nil
}

// Equal reports whether two centroid sets are element-wise identical.
// A positive tol compares each component within tol, absolute or relative.
func Equal(a, b []model.Vector, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		if tol > 0 {
			if !floats.EqualApprox(a[i], b[i], tol) {
				return false
			}
			continue
		}
		if !floats.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
