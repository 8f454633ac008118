package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/kvec/blobstore"
)

// Client is the part of the S3 API the store calls. *s3.Client satisfies it.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Store reads datasets from an S3 bucket.
type Store struct {
	client Client
	bucket string
	root   string
}

// NewStore returns a store over bucket. Every name is resolved below root,
// e.g. "datasets/".
func NewStore(client Client, bucket, root string) *Store {
	return &Store{client: client, bucket: bucket, root: root}
}

// Open downloads the object in a single GET. Dataset files are small and
// always parsed whole, so the returned blob is served from memory.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := blobstore.JoinKey(s.root, name)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}

		return nil, fmt.Errorf("s3: get %s/%s: %w", s.bucket, key, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3: read %s/%s: %w", s.bucket, key, err)
	}

	if want := aws.ToInt64(out.ContentLength); out.ContentLength != nil && want != int64(len(data)) {
		return nil, fmt.Errorf("s3: %s/%s: got %d of %d bytes", s.bucket, key, len(data), want)
	}

	return blobstore.NewBytesBlob(data), nil
}

// List pages through every key below root+prefix and returns the names
// relative to root, sorted.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string

	pages := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(blobstore.JoinKey(s.root, prefix)),
	})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3: list %s: %w", s.bucket, err)
		}

		for _, obj := range page.Contents {
			if name, ok := blobstore.RelKey(s.root, aws.ToString(obj.Key)); ok {
				names = append(names, name)
			}
		}
	}

	slices.Sort(names)

	return names, nil
}

func isNotFound(err error) bool {
	var (
		noKey *types.NoSuchKey
		nf    *types.NotFound
	)

	return errors.As(err, &noKey) || errors.As(err, &nf)
}
