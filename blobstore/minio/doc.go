// Package minio reads datasets through the MinIO client, which speaks to MinIO
// itself and to other S3-compatible servers (Ceph, SeaweedFS, Garage) without
// the AWS SDK.
//
//	client, err := minio.New(endpoint, &minio.Options{Creds: credentials.NewStaticV4(key, secret, "")})
//	...
//	loader := dataset.NewLoader(miniostore.NewStore(client, "datasets", "kvec/"))
//	ds, err := loader.Load(ctx, "cities.txt", dataset.KMeansFormat(2))
package minio
