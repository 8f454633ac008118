package minio

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/hupe1980/kvec/blobstore"
	"github.com/minio/minio-go/v7"
)

// Store reads datasets from a MinIO bucket, or from any S3-compatible
// server the MinIO client can talk to.
type Store struct {
	client *minio.Client
	bucket string
	root   string
}

// NewStore returns a store over bucket with names resolved below root.
func NewStore(client *minio.Client, bucket, root string) *Store {
	return &Store{client: client, bucket: bucket, root: root}
}

// Open fetches the whole object. minio.Object defers the request until the
// first read, so a missing key surfaces from Stat.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := blobstore.JoinKey(s.root, name)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrap("get", key, err)
	}
	defer func() { _ = obj.Close() }()

	info, err := obj.Stat()
	if err != nil {
		return nil, s.wrap("stat", key, err)
	}

	data := make([]byte, info.Size)
	if _, err := io.ReadFull(obj, data); err != nil {
		return nil, s.wrap("read", key, err)
	}

	return blobstore.NewBytesBlob(data), nil
}

// List returns the sorted names below root+prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    blobstore.JoinKey(s.root, prefix),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, s.wrap("list", prefix, obj.Err)
		}

		if name, ok := blobstore.RelKey(s.root, obj.Key); ok {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names, nil
}

func (s *Store) wrap(op, key string, err error) error {
	if isNotFound(err) {
		return blobstore.ErrNotFound
	}

	return fmt.Errorf("minio: %s %s/%s: %w", op, s.bucket, key, err)
}

func isNotFound(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound":
		return true
	default:
		return false
	}
}
