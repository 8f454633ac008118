package kmeans

import (
	"fmt"

	"github.com/hupe1980/kvec/internal/errs"
)

var (
	// ErrInvalidK is returned when k is outside [1, n].
	ErrInvalidK = errs.InvalidArgument("invalid k")

	// ErrNoVectors is returned when the input holds no vectors.
	ErrNoVectors = errs.InvalidArgument("no vectors")

	// ErrNoCentroids is returned when an assignment is requested against zero centroids.
	ErrNoCentroids = errs.InvalidArgument("no centroids")

	// ErrTooFewClusters is returned by InterClusterVariance when k < 2.
	ErrTooFewClusters = errs.InvalidArgument("inter-cluster variance requires at least 2 clusters")

	// ErrZeroVariance is returned by Score when the intra-cluster variance is 0.
	ErrZeroVariance = errs.Domain("intra-cluster variance is zero")

	// ErrNotConverged is returned when the iteration cap is reached.
	ErrNotConverged = errs.Domain("k-means did not converge")
)

// EmptyClusterError reports a cluster with no members during centroid update.
// It matches errs.ErrDomain.
type EmptyClusterError struct {
	Cluster int
}

func (e *EmptyClusterError) Error() string {
	return fmt.Sprintf("empty cluster encountered during centroid update: cluster %d", e.Cluster)
}

func (e *EmptyClusterError) Unwrap() error { return errs.ErrDomain }
