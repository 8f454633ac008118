package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/kvec/blobstore"
	miniostore "github.com/hupe1980/kvec/blobstore/minio"
	s3store "github.com/hupe1980/kvec/blobstore/s3"
	"github.com/hupe1980/kvec/dataset"
	"github.com/hupe1980/kvec/internal/config"
	"github.com/hupe1980/kvec/model"
	"github.com/hupe1980/kvec/resource"
)

func openStore(ctx context.Context, sc config.SourceConfig) (blobstore.BlobStore, error) {
	switch sc.Kind {
	case config.SourceBuiltin:
		return dataset.BuiltinStore(), nil
	case config.SourceLocal:
		return blobstore.NewLocalStore(sc.Path), nil
	case config.SourceS3:
		var optFns []func(*awsconfig.LoadOptions) error
		if sc.Region != "" {
			optFns = append(optFns, awsconfig.WithRegion(sc.Region))
		}
		if sc.AccessKey != "" {
			optFns = append(optFns, awsconfig.WithCredentialsProvider(
				awscreds.NewStaticCredentialsProvider(sc.AccessKey, sc.SecretKey, ""),
			))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if sc.Endpoint != "" {
				o.BaseEndpoint = aws.String(sc.Endpoint)
				o.UsePathStyle = true
			}
		})
		return s3store.NewStore(client, sc.Bucket, sc.Prefix), nil
	case config.SourceMinIO:
		client, err := minio.New(sc.Endpoint, &minio.Options{
			Creds:  miniocreds.NewStaticV4(sc.AccessKey, sc.SecretKey, ""),
			Secure: sc.UseSSL,
			Region: sc.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		return miniostore.NewStore(client, sc.Bucket, sc.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", sc.Kind)
	}
}

// load reads one dataset from the configured source.
func (a *app) load(ctx context.Context, name string, f dataset.Format) (model.Dataset, error) {
	sc := a.cfg.Source
	store, err := openStore(ctx, sc)
	if err != nil {
		return model.Dataset{}, err
	}

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   sc.MemoryLimitBytes,
		MaxConcurrentLoads: sc.MaxConcurrentLoads,
		IOLimitBytesPerSec: sc.IOLimitBytesPerSec,
	})
	loader := dataset.NewLoader(store,
		dataset.WithResourceController(rc),
		dataset.WithRetries(sc.Retries),
		dataset.WithBackoff(sc.Backoff),
		dataset.WithLogger(a.logger.Logger),
	)

	ds, err := loader.Load(ctx, name, f)
	a.logger.LogLoad(ctx, name, ds.Len(), err)
	return ds, err
}

// categoriesFor returns display names for the labels of a known dataset.
func categoriesFor(name string) model.Categories {
	if name == dataset.PrefecturesName {
		return dataset.RegionCategories
	}
	return nil
}
