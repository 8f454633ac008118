// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("eu-central-1"))
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "datasets/")
//	ds, err := dataset.NewLoader(store).Load(ctx, "prefectures.txt.zst", dataset.KNNFormat(2))
//
// # Features
//
//   - One GET per dataset, checked against Content-Length
//   - NoSuchKey and NotFound map to blobstore.ErrNotFound
//   - Listing pages through ListObjectsV2 and skips directory placeholders
package s3
