// Package blobstore provides read access to dataset files regardless of where
// they live.
//
// BlobStore is the interface for opening named, immutable blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem rooted at a directory
//   - MemoryStore: in-memory blobs for tests and built-in data
//   - s3.Store: Amazon S3 with HEAD-then-GET reads
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Missing blobs must satisfy errors.Is(err, ErrNotFound).
package blobstore
