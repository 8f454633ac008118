package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/hupe1980/kvec/blobstore"
	"github.com/hupe1980/kvec/model"
	"github.com/hupe1980/kvec/resource"
)

// Loader reads datasets from a blob store.
type Loader struct {
	store blobstore.BlobStore
	opts  options
}

// NewLoader creates a Loader reading from store.
func NewLoader(store blobstore.BlobStore, optFns ...Option) *Loader {
	return &Loader{
		store: store,
		opts:  applyOptions(optFns),
	}
}

// Load fetches, decompresses and parses the named blob.
//
// Transient read failures are retried with Fibonacci backoff. Missing blobs,
// cancellation and exhausted memory budgets fail immediately. Malformed content
// yields a *FormatError carrying the blob name.
func (l *Loader) Load(ctx context.Context, name string, f Format) (model.Dataset, error) {
	rc := l.opts.controller

	done, err := rc.BeginLoad(ctx)
	if err != nil {
		return model.Dataset{}, err
	}
	defer done()

	start := time.Now()

	raw, rawRes, err := l.fetch(ctx, name)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("load %s: %w", name, err)
	}
	defer rawRes.Release()

	size := len(raw)

	text, textRes, err := l.decompress(ctx, name, raw, rawRes)
	if err != nil {
		return model.Dataset{}, err
	}
	defer textRes.Release()

	ds, err := Parse(bytes.NewReader(text), f)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Name = name
		}
		return model.Dataset{}, err
	}

	l.opts.logger.DebugContext(ctx, "dataset loaded",
		"name", name,
		"items", ds.Len(),
		"bytes", size,
		"compression", CompressionFromName(name).String(),
		"duration", time.Since(start),
	)
	return ds, nil
}

func (l *Loader) fetch(ctx context.Context, name string) ([]byte, *resource.Reservation, error) {
	var (
		raw     []byte
		res     *resource.Reservation
		attempt int
	)

	b := retry.WithMaxRetries(l.opts.maxRetries, retry.NewFibonacci(l.opts.backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		data, r, err := l.readOnce(ctx, name)
		if err != nil {
			if !shouldRetry(err) {
				return err
			}
			l.opts.logger.WarnContext(ctx, "dataset read failed, will retry", "name", name, "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		raw, res = data, r
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return raw, res, nil
}

// readOnce reads the whole blob. The returned reservation covers the bytes.
func (l *Loader) readOnce(ctx context.Context, name string) ([]byte, *resource.Reservation, error) {
	rc := l.opts.controller

	blob, err := l.store.Open(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = blob.Close() }()

	size := blob.Size()
	res, err := rc.Reserve(ctx, size)
	if err != nil {
		return nil, nil, err
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(rc.Throttle(ctx, &blobReader{ctx: ctx, blob: blob}), buf); err != nil {
		res.Release()
		return nil, nil, err
	}
	return buf, res, nil
}

// decompress passes uncompressed blobs through with an empty reservation.
// Otherwise rawRes is released once the compressed bytes are consumed, so the
// two copies never need to fit in the budget together.
func (l *Loader) decompress(ctx context.Context, name string, raw []byte, rawRes *resource.Reservation) ([]byte, *resource.Reservation, error) {
	c := CompressionFromName(name)
	if c == CompressionNone {
		return raw, nil, nil
	}

	r, err := Decompress(bytes.NewReader(raw), c)
	if err != nil {
		return nil, nil, &FormatError{Name: name, Reason: err.Error()}
	}
	defer func() { _ = r.Close() }()

	limit := l.opts.maxDecompressed
	text, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, nil, &FormatError{Name: name, Reason: fmt.Sprintf("%s: %v", c, err)}
	}
	if int64(len(text)) > limit {
		return nil, nil, fmt.Errorf("load %s: %w: decompressed content exceeds %d bytes", name, resource.ErrBudgetExceeded, limit)
	}

	rawRes.Release()

	res, err := l.opts.controller.Reserve(ctx, int64(len(text)))
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", name, err)
	}
	return text, res, nil
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, blobstore.ErrNotFound) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, resource.ErrBudgetExceeded) {
		return false
	}
	return true
}

// blobReader adapts a blobstore.Blob to io.Reader.
type blobReader struct {
	ctx  context.Context
	blob blobstore.Blob
	off  int64
}

func (r *blobReader) Read(p []byte) (int, error) {
	if r.off >= r.blob.Size() {
		return 0, io.EOF
	}
	n, err := r.blob.ReadAt(r.ctx, p, r.off)
	r.off += int64(n)
	if errors.Is(err, io.EOF) && n > 0 {
		err = nil
	}
	return n, err
}
