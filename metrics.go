package kvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordIteration is called after each assign/update step of a k-means run.
	RecordIteration(iteration int, converged bool)

	// RecordClustering is called after each k-means run.
	// iterations is 0 when the run failed.
	RecordClustering(k, iterations int, duration time.Duration, err error)

	// RecordClassification is called after each k-NN evaluation.
	// queries is the number of classified items, correct the number of labeled
	// items whose prediction matched.
	RecordClassification(queries, correct int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, bool)                           {}
func (NoopMetricsCollector) RecordClustering(int, int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordClassification(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	IterationCount           atomic.Int64
	ClusteringCount          atomic.Int64
	ClusteringErrors         atomic.Int64
	ClusteringTotalNanos     atomic.Int64
	ClassificationCount      atomic.Int64
	ClassificationErrors     atomic.Int64
	ClassificationQueries    atomic.Int64
	ClassificationCorrect    atomic.Int64
	ClassificationTotalNanos atomic.Int64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(iteration int, converged bool) {
	b.IterationCount.Add(1)
}

// RecordClustering implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClustering(k, iterations int, duration time.Duration, err error) {
	b.ClusteringCount.Add(1)
	b.ClusteringTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClusteringErrors.Add(1)
	}
}

// RecordClassification implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClassification(queries, correct int, duration time.Duration, err error) {
	b.ClassificationCount.Add(1)
	b.ClassificationTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClassificationErrors.Add(1)
		return
	}
	b.ClassificationQueries.Add(int64(queries))
	b.ClassificationCorrect.Add(int64(correct))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IterationCount:         b.IterationCount.Load(),
		ClusteringCount:        b.ClusteringCount.Load(),
		ClusteringErrors:       b.ClusteringErrors.Load(),
		ClusteringAvgNanos:     avg(b.ClusteringTotalNanos.Load(), b.ClusteringCount.Load()),
		ClassificationCount:    b.ClassificationCount.Load(),
		ClassificationErrors:   b.ClassificationErrors.Load(),
		ClassificationQueries:  b.ClassificationQueries.Load(),
		ClassificationCorrect:  b.ClassificationCorrect.Load(),
		ClassificationAvgNanos: avg(b.ClassificationTotalNanos.Load(), b.ClassificationCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	IterationCount         int64
	ClusteringCount        int64
	ClusteringErrors       int64
	ClusteringAvgNanos     int64
	ClassificationCount    int64
	ClassificationErrors   int64
	ClassificationQueries  int64
	ClassificationCorrect  int64
	ClassificationAvgNanos int64
}
