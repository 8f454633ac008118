package kvec

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/kvec/kmeans"
	"github.com/hupe1980/kvec/knn"
	"github.com/hupe1980/kvec/model"
)

// Clustering is the outcome of Cluster.
type Clustering struct {
	*kmeans.Result

	// Evaluation is nil when the score is undefined: fewer than two clusters,
	// or an intra-cluster variance of zero.
	Evaluation *kmeans.Evaluation
}

// Cluster partitions ds into k clusters with Lloyd's algorithm and evaluates
// the final partition.
func Cluster(ctx context.Context, ds model.Dataset, k int, optFns ...Option) (*Clustering, error) {
	o := applyOptions(optFns)
	log := o.logger.WithCount(ds.Len())

	start := time.Now()
	res, err := cluster(ctx, ds, k, o)
	iterations := 0
	if res != nil {
		iterations = res.Iterations
	}
	o.metricsCollector.RecordClustering(k, iterations, time.Since(start), err)
	log.LogClustering(ctx, k, iterations, err)
	return res, err
}

func cluster(ctx context.Context, ds model.Dataset, k int, o options) (*Clustering, error) {
	ds, err := prepare(ds, o)
	if err != nil {
		return nil, err
	}

	kmOpts := append([]kmeans.Option{kmeans.WithLogger(o.logger.Logger)}, o.kmeansOptions...)
	kmOpts = append(kmOpts, kmeans.WithIterationHook(func(it kmeans.Iteration) {
		o.metricsCollector.RecordIteration(it.Index, it.Converged)
		if o.hook != nil {
			o.hook(it)
		}
	}))

	vectors := ds.Vectors()
	res, err := kmeans.Run(ctx, o.source, vectors, k, kmOpts...)
	if err != nil {
		return nil, err
	}

	out := &Clustering{Result: res}
	eval, err := kmeans.Evaluate(vectors, res.Centroids, res.Clusters)
	switch {
	case err == nil:
		out.Evaluation = &eval
	case errors.Is(err, kmeans.ErrTooFewClusters), errors.Is(err, kmeans.ErrZeroVariance):
		o.logger.DebugContext(ctx, "evaluation skipped", "reason", err)
	default:
		return nil, err
	}
	return out, nil
}

// Classify predicts a category for every item of queries from its k nearest
// items in training. Labeled queries are scored against their label.
func Classify(ctx context.Context, training, queries model.Dataset, numCategories, k int, optFns ...Option) (*knn.Report, error) {
	o := applyOptions(optFns)
	return classify(ctx, training, queries, numCategories, k, o)
}

// SplitAndClassify draws testSize items of ds as queries, classifies them
// against the remaining items and returns both the split and the report.
func SplitAndClassify(ctx context.Context, ds model.Dataset, numCategories, k, testSize int, optFns ...Option) (*knn.Partition, *knn.Report, error) {
	o := applyOptions(optFns)

	part, err := knn.SplitDataset(o.source, ds, testSize)
	if err != nil {
		o.logger.LogClassification(ctx, k, 0, 0, 0, err)
		return nil, nil, err
	}
	o.logger.DebugContext(ctx, "dataset split", "train", part.TrainIndices, "test", part.TestIndices)

	r, err := classify(ctx, part.Train, part.Test, numCategories, k, o)
	if err != nil {
		return nil, nil, err
	}
	return part, r, nil
}

func classify(ctx context.Context, training, queries model.Dataset, numCategories, k int, o options) (*knn.Report, error) {
	start := time.Now()
	r, err := evaluate(ctx, training, queries, numCategories, k, o)

	var correct, labeled int
	if r != nil {
		correct, labeled = r.Correct, r.Labeled
	}
	o.metricsCollector.RecordClassification(queries.Len(), correct, time.Since(start), err)
	o.logger.WithCount(training.Len()).LogClassification(ctx, k, queries.Len(), correct, labeled, err)
	return r, err
}

func evaluate(ctx context.Context, training, queries model.Dataset, numCategories, k int, o options) (*knn.Report, error) {
	training, err := prepare(training, o)
	if err != nil {
		return nil, err
	}
	queries, err = prepare(queries, o)
	if err != nil {
		return nil, err
	}

	knnOpts := append([]knn.Option{knn.WithLogger(o.logger.Logger)}, o.knnOptions...)
	c, err := knn.NewClassifier(training, numCategories, k, knnOpts...)
	if err != nil {
		return nil, err
	}
	return c.Evaluate(ctx, queries)
}

func prepare(ds model.Dataset, o options) (model.Dataset, error) {
	if ds.Len() == 0 {
		return ds, nil
	}
	if err := ds.Validate(); err != nil {
		return model.Dataset{}, err
	}
	if !o.normalize {
		return ds, nil
	}
	return ds.Normalize()
}
