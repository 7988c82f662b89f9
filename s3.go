package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

type S3Client struct {
	Client *s3.Client
}

func NewS3BucketClient(ctx context.Context, appConfig AppConfig) (BucketClient, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(appConfig.AWSRegion),
	}
	if appConfig.IAMProfile != "" {
		opts = append(opts, config.WithSharedConfigProfile(appConfig.IAMProfile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("Error creating s3 client: %+v", err)
	}
	awsS3Client := s3.NewFromConfig(cfg)

	return &S3Client{Client: awsS3Client}, nil
}

func (s *S3Client) ListObjects(ctx context.Context, bucketName string) (map[string]ObjectInfo, error) {
	bucketFiles := make(map[string]ObjectInfo)
	listParams := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
	}
	paginator := s3.NewListObjectsV2Paginator(s.Client, listParams, func(o *s3.ListObjectsV2PaginatorOptions) {})
	for paginator.HasMorePages() {
		currentPage, pageErr := paginator.NextPage(ctx)
		if pageErr != nil {
			return bucketFiles, pageErr
		}
		for _, object := range currentPage.Contents {
			bucketFiles[*object.Key] = ObjectInfo{ModTime: *object.LastModified, Size: *object.Size}
		}
	}

	return bucketFiles, nil
}

func (s *S3Client) DownloadFile(ctx context.Context, bucketName, key, localPath string) error {
	fd, createErr := os.Create(localPath)
	if createErr != nil {
		return createErr
	}
	defer fd.Close()

	downloader := manager.NewDownloader(s.Client)
	_, getErr := downloader.Download(ctx, fd, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})

	return getErr
}

func (s *S3Client) HeadObject(ctx context.Context, bucketName, key string) (*ObjectInfo, error) {
	headResp, headErr := s.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if headErr != nil {
		var notFound *types.NotFound
		if errors.As(headErr, &notFound) {
			return nil, nil
		}
		// HeadObject reports missing keys as a bare 404 on some S3-compatible
		// stores, without the modeled NotFound type
		var apiErr smithy.APIError
		if errors.As(headErr, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return nil, nil
		}
		return nil, headErr
	}

	info := &ObjectInfo{ModTime: *headResp.LastModified}
	if headResp.ContentLength != nil {
		info.Size = *headResp.ContentLength
	}

	return info, nil
}

func (s *S3Client) UploadFile(ctx context.Context, bucketName, key string, file *os.File) error {
	uploader := manager.NewUploader(s.Client)
	_, putErr := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
		Body:   file,
	})

	return putErr
}
