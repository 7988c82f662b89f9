package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

type GCSClient struct {
	Client *storage.Client
}

func NewGCSBucketClient(ctx context.Context) (BucketClient, error) {
	gcsClient, clientErr := storage.NewClient(ctx)
	if clientErr != nil {
		return nil, fmt.Errorf("Error creating gcs client: %+v", clientErr)
	}

	return &GCSClient{Client: gcsClient}, nil
}

func (s *GCSClient) ListObjects(ctx context.Context, bucketName string) (map[string]ObjectInfo, error) {
	objectMap := make(map[string]ObjectInfo)
	objIter := s.Client.Bucket(bucketName).Objects(ctx, nil)
	for {
		attrs, err := objIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return objectMap, fmt.Errorf("Bucket(%q).Objects: %v", bucketName, err)
		}
		objectMap[attrs.Name] = ObjectInfo{ModTime: attrs.Updated, Size: attrs.Size}
	}

	return objectMap, nil
}

func (s *GCSClient) DownloadFile(ctx context.Context, bucketName, key, localPath string) error {
	objReader, readerErr := s.Client.Bucket(bucketName).Object(key).NewReader(ctx)
	if readerErr != nil {
		return readerErr
	}
	defer objReader.Close()

	fd, createErr := os.Create(localPath)
	if createErr != nil {
		return createErr
	}
	defer fd.Close()

	if _, copyErr := io.Copy(fd, objReader); copyErr != nil {
		return copyErr
	}

	return nil
}

func (s *GCSClient) HeadObject(ctx context.Context, bucketName, key string) (*ObjectInfo, error) {
	attrs, attrsErr := s.Client.Bucket(bucketName).Object(key).Attrs(ctx)
	if attrsErr != nil {
		if errors.Is(attrsErr, storage.ErrObjectNotExist) {
			return nil, nil
		}
		return nil, attrsErr
	}

	return &ObjectInfo{ModTime: attrs.Updated, Size: attrs.Size}, nil
}

func (s *GCSClient) UploadFile(ctx context.Context, bucketName, key string, file *os.File) error {
	object := s.Client.Bucket(bucketName).Object(key)
	objWriter := object.NewWriter(ctx)
	if _, uploadErr := io.Copy(objWriter, file); uploadErr != nil {
		return uploadErr
	}
	if closeErr := objWriter.Close(); closeErr != nil {
		return closeErr
	}

	return nil
}
