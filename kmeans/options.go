package kmeans

import "log/slog"

type options struct {
	maxIterations int
	tolerance     float64
	emptyCluster  EmptyClusterPolicy
	hook          IterationHook
	logger        *slog.Logger
}

// Option configures Run.
type Option func(*options)

// WithMaxIterations caps the number of assign/update iterations.
// 0 (the default) means unlimited.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithTolerance switches the convergence test from exact equality to a
// per-component comparison within tol. tol <= 0 keeps exact equality.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithEmptyClusterPolicy sets how empty clusters are handled during update.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyCluster = p
	}
}

// WithIterationHook registers a callback invoked after every iteration.
func WithIterationHook(h IterationHook) Option {
	return func(o *options) {
		o.hook = h
	}
}

// WithLogger configures debug logging of the loop. Pass nil to disable.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		emptyCluster: EmptyClusterFail,
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
