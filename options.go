package kvec

import (
	"math/rand"

	"github.com/hupe1980/kvec/kmeans"
	"github.com/hupe1980/kvec/knn"
)

// Source supplies uniformly distributed indices. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type options struct {
	source           Source
	logger           *Logger
	metricsCollector MetricsCollector
	normalize        bool
	hook             kmeans.IterationHook
	kmeansOptions    []kmeans.Option
	knnOptions       []knn.Option
}

// Option configures Cluster, Classify and SplitAndClassify.
type Option func(*options)

// WithSeed seeds the pseudo-random source used for centroid initialization
// and train/test splits. Equal seeds reproduce equal runs.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.source = rand.New(rand.NewSource(seed)) //nolint:gosec
	}
}

// WithSource replaces the random source. A nil source is ignored.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics sink. If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithNormalize scales every vector to unit L2 norm before running.
//
// Datasets holding a zero vector then fail with ErrDomain.
func WithNormalize() Option {
	return func(o *options) {
		o.normalize = true
	}
}

// WithIterationHook observes every k-means iteration.
func WithIterationHook(h kmeans.IterationHook) Option {
	return func(o *options) {
		o.hook = h
	}
}

// WithKMeansOptions passes options through to kmeans.Run.
func WithKMeansOptions(opts ...kmeans.Option) Option {
	return func(o *options) {
		o.kmeansOptions = append(o.kmeansOptions, opts...)
	}
}

// WithKNNOptions passes options through to knn.NewClassifier.
func WithKNNOptions(opts ...knn.Option) Option {
	return func(o *options) {
		o.knnOptions = append(o.knnOptions, opts...)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.source == nil {
		o.source = rand.New(rand.NewSource(rand.Int63())) //nolint:gosec
	}
	return o
}
