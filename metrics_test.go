package kvec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordIteration(1, false)
	mc.RecordIteration(2, true)
	mc.RecordClustering(2, 2, 10*time.Millisecond, nil)
	mc.RecordClustering(2, 0, 30*time.Millisecond, errors.New("empty cluster"))
	mc.RecordClassification(4, 3, time.Millisecond, nil)
	mc.RecordClassification(0, 0, time.Millisecond, errors.New("invalid k"))

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.IterationCount)
	assert.Equal(t, int64(2), stats.ClusteringCount)
	assert.Equal(t, int64(1), stats.ClusteringErrors)
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), stats.ClusteringAvgNanos)
	assert.Equal(t, int64(2), stats.ClassificationCount)
	assert.Equal(t, int64(1), stats.ClassificationErrors)
	assert.Equal(t, int64(4), stats.ClassificationQueries)
	assert.Equal(t, int64(3), stats.ClassificationCorrect)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	stats := (&BasicMetricsCollector{}).GetStats()
	assert.Zero(t, stats.ClusteringAvgNanos)
	assert.Zero(t, stats.ClassificationAvgNanos)
}

var _ MetricsCollector = NoopMetricsCollector{}
var _ MetricsCollector = (*BasicMetricsCollector)(nil)
