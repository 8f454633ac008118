package s3

import (
	"context"
	"os"
	"path"
	"testing"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/kvec/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reads an existing object when KVEC_S3_BUCKET and KVEC_S3_KEY are set.
// Credentials come from the default AWS chain.
func TestStore_Live(t *testing.T) {
	bucket, key := os.Getenv("KVEC_S3_BUCKET"), os.Getenv("KVEC_S3_KEY")
	if bucket == "" || key == "" {
		t.Skip("KVEC_S3_BUCKET or KVEC_S3_KEY not set")
	}

	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx)
	require.NoError(t, err)

	store := NewStore(s3.NewFromConfig(cfg), bucket, "")

	blob, err := store.Open(ctx, key)
	require.NoError(t, err)
	t.Cleanup(func() { _ = blob.Close() })

	data, err := blobstore.ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Len(t, data, int(blob.Size()))

	dir := path.Dir(key)
	if dir == "." {
		dir = ""
	}

	names, err := store.List(ctx, dir)
	require.NoError(t, err)
	assert.Contains(t, names, key)
}
