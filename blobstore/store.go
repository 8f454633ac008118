package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing immutable data blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	// ReadAt reads len(p) bytes at offset off. It follows io.ReaderAt semantics.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// Size returns the size of the blob in bytes.
	Size() int64
	io.Closer
}

// ReadAll reads the entire blob into memory.
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	size := b.Size()
	if size < 0 {
		return nil, fmt.Errorf("blobstore: negative blob size %d", size)
	}
	buf := make([]byte, size)
	if size == 0 {
		return buf, nil
	}
	n, err := b.ReadAt(ctx, buf, 0)
	if err != nil && !(errors.Is(err, io.EOF) && int64(n) == size) {
		return nil, err
	}
	if int64(n) != size {
		return nil, fmt.Errorf("blobstore: short read: %d of %d bytes", n, size)
	}
	return buf, nil
}

// JoinKey places name under the store's root prefix.
func JoinKey(root, name string) string {
	return path.Join(root, name)
}

// RelKey strips the root prefix from an object key. It reports false for keys
// outside root and for directory placeholders.
func RelKey(root, key string) (string, bool) {
	rel := key
	if root = strings.TrimSuffix(root, "/"); root != "" {
		var ok bool
		if rel, ok = strings.CutPrefix(key, root+"/"); !ok {
			return "", false
		}
	}

	if rel == "" || strings.HasSuffix(rel, "/") {
		return "", false
	}

	return rel, true
}
