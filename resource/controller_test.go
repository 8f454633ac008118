package resource

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Reserve(t *testing.T) {
	ctx := context.Background()
	c := NewController(Config{MemoryLimitBytes: 100})

	a, err := c.Reserve(ctx, 50)
	require.NoError(t, err)
	b, err := c.Reserve(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, int64(90), c.InUse())
	assert.Equal(t, int64(40), b.Size())

	short, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	_, err = c.Reserve(short, 20)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int64(90), c.InUse())

	a.Release()
	a.Release()
	assert.Equal(t, int64(40), c.InUse())

	_, err = c.Reserve(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(60), c.InUse())
}

func TestController_OverBudget(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	_, err := c.Reserve(context.Background(), 101)
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Equal(t, int64(0), c.InUse())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{})

	r, err := c.Reserve(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.InUse())

	r.Release()
	assert.Equal(t, int64(0), c.InUse())
}

func TestController_BeginLoad(t *testing.T) {
	ctx := context.Background()
	c := NewController(Config{MaxConcurrentLoads: 2})

	done1, err := c.BeginLoad(ctx)
	require.NoError(t, err)
	_, err = c.BeginLoad(ctx)
	require.NoError(t, err)

	blocked, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	_, err = c.BeginLoad(blocked)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	done1()
	done1()

	_, err = c.BeginLoad(ctx)
	require.NoError(t, err)
}

func TestController_Nil(t *testing.T) {
	var c *Controller
	ctx := context.Background()

	r, err := c.Reserve(ctx, 1<<40)
	require.NoError(t, err)
	r.Release()
	assert.Equal(t, int64(0), c.InUse())

	done, err := c.BeginLoad(ctx)
	require.NoError(t, err)
	done()

	src := bytes.NewReader(nil)
	assert.Same(t, src, c.Throttle(ctx, src))
}

func TestThrottle_CapsReadAtBurst(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})

	data := bytes.Repeat([]byte("x"), 3<<20)
	r := c.Throttle(context.Background(), bytes.NewReader(data))

	buf := make([]byte, 2<<20)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 1<<20, n)
}

func TestThrottle_Canceled(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 16})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := io.ReadAll(c.Throttle(ctx, bytes.NewReader([]byte("abc"))))
	assert.Error(t, err)
}
