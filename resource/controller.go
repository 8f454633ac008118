// Package resource bounds the memory and I/O bandwidth spent on loading datasets.
package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrBudgetExceeded is returned when a single reservation is larger than the
// configured memory limit and can therefore never succeed.
var ErrBudgetExceeded = errors.New("resource: memory budget exceeded")

// Config holds resource limits. Zero values mean unlimited, except
// MaxConcurrentLoads which defaults to 1.
type Config struct {
	// MemoryLimitBytes caps raw plus decompressed dataset bytes held at once.
	MemoryLimitBytes int64

	// MaxConcurrentLoads caps Loader.Load calls in flight.
	MaxConcurrentLoads int64

	// IOLimitBytesPerSec caps read throughput from blob stores.
	IOLimitBytesPerSec int64
}

// Controller hands out load slots, memory reservations and I/O tokens.
// A nil *Controller imposes no limits.
type Controller struct {
	limit int64

	mem   *semaphore.Weighted
	inUse atomic.Int64

	slots *semaphore.Weighted
	io    *rate.Limiter
}

// NewController builds a controller enforcing cfg.
func NewController(cfg Config) *Controller {
	slots := cfg.MaxConcurrentLoads
	if slots <= 0 {
		slots = 1
	}

	c := &Controller{
		limit: cfg.MemoryLimitBytes,
		slots: semaphore.NewWeighted(slots),
	}
	if c.limit > 0 {
		c.mem = semaphore.NewWeighted(c.limit)
	}
	if n := cfg.IOLimitBytesPerSec; n > 0 {
		c.io = rate.NewLimiter(rate.Limit(n), int(n))
	}

	return c
}

// BeginLoad waits for a free load slot. The returned func gives it back.
func (c *Controller) BeginLoad(ctx context.Context) (func(), error) {
	if c == nil {
		return func() {}, nil
	}

	if err := c.slots.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	var once sync.Once

	return func() { once.Do(func() { c.slots.Release(1) }) }, nil
}

// Reservation is a block of the memory budget. Release is idempotent.
type Reservation struct {
	c    *Controller
	n    int64
	once sync.Once
}

// Size reports the reserved byte count.
func (r *Reservation) Size() int64 {
	if r == nil {
		return 0
	}

	return r.n
}

// Release returns the bytes to the budget. It is idempotent and safe on a nil
// Reservation.
func (r *Reservation) Release() {
	if r == nil || r.c == nil {
		return
	}

	r.once.Do(func() {
		if r.c.mem != nil {
			r.c.mem.Release(r.n)
		}
		r.c.inUse.Add(-r.n)
	})
}

// Reserve blocks until n bytes fit in the budget or ctx is done.
func (c *Controller) Reserve(ctx context.Context, n int64) (*Reservation, error) {
	if c == nil || n <= 0 {
		return &Reservation{}, nil
	}

	if c.mem != nil {
		if n > c.limit {
			return nil, fmt.Errorf("%w: want %d bytes, limit is %d", ErrBudgetExceeded, n, c.limit)
		}
		if err := c.mem.Acquire(ctx, n); err != nil {
			return nil, err
		}
	}

	c.inUse.Add(n)

	return &Reservation{c: c, n: n}, nil
}

// InUse reports the bytes currently reserved.
func (c *Controller) InUse() int64 {
	if c == nil {
		return 0
	}

	return c.inUse.Load()
}

// Throttle wraps r so reads draw from the I/O budget. Without an I/O limit r
// is returned as is.
func (c *Controller) Throttle(ctx context.Context, r io.Reader) io.Reader {
	if c == nil || c.io == nil {
		return r
	}

	return &throttled{ctx: ctx, r: r, lim: c.io}
}

type throttled struct {
	ctx context.Context
	r   io.Reader
	lim *rate.Limiter
}

// Read never asks for more than one burst worth of tokens.
func (t *throttled) Read(p []byte) (int, error) {
	if b := t.lim.Burst(); len(p) > b {
		p = p[:b]
	}

	if err := t.lim.WaitN(t.ctx, len(p)); err != nil {
		return 0, err
	}

	return t.r.Read(p)
}
