package knn

import (
	"log/slog"

	"github.com/hupe1980/kvec/distance"
)

type options struct {
	metric distance.Metric
	logger *slog.Logger
}

// Option configures a Classifier.
type Option func(*options)

// WithMetric selects the ranking metric. MetricSquaredL2 skips the square root
// and yields the same neighbor order up to rounding. Default is MetricL2.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithLogger configures debug logging of per-query outcomes. Pass nil to disable.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metric: distance.MetricL2,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
