package dataset

import (
	"log/slog"
	"time"

	"github.com/hupe1980/kvec/resource"
)

type options struct {
	controller      *resource.Controller
	maxRetries      uint64
	backoff         time.Duration
	maxDecompressed int64
	logger          *slog.Logger
}

// Option configures a Loader.
type Option func(*options)

// WithResourceController bounds memory and read throughput of loads.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithRetries sets how many times a transient read failure is retried.
// Default is 5; 0 disables retries.
func WithRetries(n uint64) Option {
	return func(o *options) {
		o.maxRetries = n
	}
}

// WithBackoff sets the base delay of the Fibonacci backoff between retries.
// Default is 1s.
func WithBackoff(d time.Duration) Option {
	return func(o *options) {
		o.backoff = d
	}
}

// WithMaxDecompressedBytes caps the size of decompressed content.
// Default is 64 MiB.
func WithMaxDecompressedBytes(n int64) Option {
	return func(o *options) {
		o.maxDecompressed = n
	}
}

// WithLogger configures logging of loads and retries. Pass nil to disable.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxRetries:      5,
		backoff:         time.Second,
		maxDecompressed: 64 << 20,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.backoff <= 0 {
		o.backoff = time.Millisecond
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
