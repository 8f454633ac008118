package blobstore

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps blobs in a map. The built-in datasets are served from
// one, and tests use it in place of a bucket or directory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string][]byte{}}
}

// Put stores a private copy of data under name.
func (s *MemoryStore) Put(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	s.entries[name] = bytes.Clone(data)
	s.mu.Unlock()

	return nil
}

// Open returns a handle over a snapshot of the named blob.
func (s *MemoryStore) Open(_ context.Context, name string) (Blob, error) {
	s.mu.RLock()
	data, ok := s.entries[name]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	// Put never mutates a stored slice in place, so sharing it is safe.
	return NewBytesBlob(data), nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	delete(s.entries, name)
	s.mu.Unlock()

	return nil
}

// List returns the sorted names that start with prefix.
func (s *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := slices.Sorted(maps.Keys(s.entries))

	return slices.DeleteFunc(names, func(n string) bool {
		return !strings.HasPrefix(n, prefix)
	}), nil
}

// NewBytesBlob wraps data, which the caller must not modify afterwards.
// Remote stores fetch a dataset in one request and hand it out this way.
func NewBytesBlob(data []byte) Blob {
	return memoryBlob{bytes.NewReader(data)}
}

type memoryBlob struct{ r *bytes.Reader }

// ReadAt follows io.ReaderAt: a read that stops short reports io.EOF.
func (b memoryBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	return b.r.ReadAt(p, off)
}

func (b memoryBlob) Size() int64 { return b.r.Size() }

func (memoryBlob) Close() error { return nil }
