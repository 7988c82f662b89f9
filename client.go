package main

import (
	"context"
	"fmt"
	"os"
	"time"
)

type ObjectInfo struct {
	ModTime time.Time
	Size    int64
}

// BucketClient is the object store abstraction both sync directions run
// against. HeadObject returns (nil, nil) when the key does not exist --
// that is the normal should-upload path, not a failure.
type BucketClient interface {
	ListObjects(ctx context.Context, bucketName string) (map[string]ObjectInfo, error)
	DownloadFile(ctx context.Context, bucketName string, key string, localPath string) error
	HeadObject(ctx context.Context, bucketName string, key string) (*ObjectInfo, error)
	UploadFile(ctx context.Context, bucketName string, key string, file *os.File) error
}

func ClientFromConfig(ctx context.Context, appConfig AppConfig) (BucketClient, error) {
	switch appConfig.Provider {
	case "aws":
		return NewS3BucketClient(ctx, appConfig)
	case "gcs":
		return NewGCSBucketClient(ctx)
	default:
		return nil, fmt.Errorf("Unknown cloud provider: %s", appConfig.Provider)
	}
}
