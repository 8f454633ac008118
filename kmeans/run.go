package kmeans

import (
	"context"
	"fmt"

	"github.com/hupe1980/kvec/distance"
	"github.com/hupe1980/kvec/internal/errs"
	"github.com/hupe1980/kvec/model"
)

// Iteration is the state observed after one assign/update step.
type Iteration struct {
	// Index is the 1-based iteration number.
	Index int
	// Clusters is the partition computed in this iteration.
	Clusters []Cluster
	// Centroids are the centroids recomputed from Clusters.
	Centroids []model.Vector
	// Converged reports whether Centroids equal the previous centroids.
	Converged bool
}

// IterationHook observes the loop. It must not modify its argument.
type IterationHook func(Iteration)

// Result is the outcome of a converged run.
type Result struct {
	// Initial holds the dataset indices chosen as initial centroids, in selection order.
	Initial []int
	// InitialCentroids are copies of the initially selected vectors.
	InitialCentroids []model.Vector
	// Centroids are the final centroids.
	Centroids []model.Vector
	// Clusters is the partition from the last assignment step.
	Clusters []Cluster
	// Iterations is the number of assign/update steps performed.
	Iterations int
}

// Run clusters vectors into k clusters.
//
// The loop exits once Update reproduces the previous centroids. The context is
// checked once per iteration. When a positive iteration cap is reached first,
// Run returns an error wrapping ErrNotConverged and no result.
func Run(ctx context.Context, src Source, vectors []model.Vector, k int, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)

	if err := validateVectors(vectors); err != nil {
		return nil, err
	}

	centroids, initial, err := InitCentroids(src, vectors, k)
	if err != nil {
		return nil, err
	}
	o.logger.DebugContext(ctx, "centroids initialized", "k", k, "indices", initial)

	res := &Result{
		Initial:          initial,
		InitialCentroids: centroids,
	}

	previous := centroids
	for iter := 1; ; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if o.maxIterations > 0 && iter > o.maxIterations {
			return nil, fmt.Errorf("%w after %d iterations", ErrNotConverged, o.maxIterations)
		}

		clusters, next, err := Iterate(vectors, previous, o.emptyCluster)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", iter, err)
		}

		converged := Equal(next, previous, o.tolerance)
		o.logger.DebugContext(ctx, "iteration completed", "iteration", iter, "converged", converged)
		if o.hook != nil {
			o.hook(Iteration{
				Index:     iter,
				Clusters:  clusters,
				Centroids: next,
				Converged: converged,
			})
		}

		if converged {
			res.Centroids = next
			res.Clusters = clusters
			res.Iterations = iter
			return res, nil
		}
		previous = next
	}
}

func validateVectors(vectors []model.Vector) error {
	if len(vectors) == 0 {
		return ErrNoVectors
	}
	dim := len(vectors[0])
	if dim == 0 {
		return errs.InvalidArgument("vectors have dimension 0")
	}
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("vector %d: %w", i, &distance.ErrDimensionMismatch{Left: dim, Right: len(v)})
		}
	}
	return nil
}
