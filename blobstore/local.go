package blobstore

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// LocalStore serves blobs from a directory tree. Names are slash separated
// and may not escape the directory.
type LocalStore struct {
	fsys fs.FS
}

// NewLocalStore returns a store rooted at dir. An empty dir means the
// working directory.
func NewLocalStore(dir string) *LocalStore {
	if dir == "" {
		dir = "."
	}

	return &LocalStore{fsys: os.DirFS(dir)}
}

// Open opens a regular file. Missing files satisfy errors.Is(err, ErrNotFound).
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	f, err := s.fsys.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err == nil && !info.Mode().IsRegular() {
		err = &fs.PathError{Op: "open", Path: name, Err: fmt.Errorf("not a regular file (%s)", info.Mode().Type())}
	}

	ra, ok := f.(io.ReaderAt)
	if err == nil && !ok {
		err = &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &localBlob{File: f, ra: ra, size: info.Size()}, nil
}

// List walks the tree and returns the sorted regular files whose name starts
// with prefix.
func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string

	err := fs.WalkDir(s.fsys, ".", func(name string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case d.Type().IsRegular() && strings.HasPrefix(name, prefix):
			names = append(names, name)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(names)

	return names, nil
}

type localBlob struct {
	fs.File
	ra   io.ReaderAt
	size int64
}

func (b *localBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return b.ra.ReadAt(p, off)
}

func (b *localBlob) Size() int64 { return b.size }
