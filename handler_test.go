package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMissingBucketConfigReturns500(t *testing.T) {
	mockS3Client := NewMockClient(map[string]ObjectInfo{})
	syncHandler := NewSyncHandler(mockS3Client, AppConfig{RootPath: t.TempDir()}, nil)

	response, handleErr := syncHandler.Handle(context.Background(), nil)

	assert.Nil(t, handleErr)
	assert.Equal(t, 500, response.StatusCode)
	assert.Len(t, mockS3Client.DownloadRequests, 0)

	var report errorReport
	assert.Nil(t, json.Unmarshal([]byte(response.Body), &report))
	assert.Contains(t, report.Error, "S3_BUCKET")
	_, parseErr := time.Parse(time.RFC3339, report.Timestamp)
	assert.Nil(t, parseErr)
}

func TestMissingRootPathConfigReturns500(t *testing.T) {
	mockS3Client := NewMockClient(map[string]ObjectInfo{})
	syncHandler := NewSyncHandler(mockS3Client, AppConfig{Bucket: "not-real-bucket"}, nil)

	response, handleErr := syncHandler.Handle(context.Background(), nil)

	assert.Nil(t, handleErr)
	assert.Equal(t, 500, response.StatusCode)

	var report errorReport
	assert.Nil(t, json.Unmarshal([]byte(response.Body), &report))
	assert.Contains(t, report.Error, "EFS_PATH")
}

func TestEmptyBucketReturnsNoObjectsResponse(t *testing.T) {
	mockS3Client := NewMockClient(map[string]ObjectInfo{})
	appConfig := AppConfig{Bucket: "not-real-bucket", RootPath: t.TempDir()}
	syncHandler := NewSyncHandler(mockS3Client, appConfig, nil)

	response, handleErr := syncHandler.Handle(context.Background(), nil)

	assert.Nil(t, handleErr)
	assert.Equal(t, 200, response.StatusCode)

	var report syncReport
	assert.Nil(t, json.Unmarshal([]byte(response.Body), &report))
	assert.Equal(t, "No objects to sync", report.Message)
	assert.Nil(t, report.Details)
}

func TestCompletedSyncResponseBody(t *testing.T) {
	mockBucketList := map[string]ObjectInfo{
		"docs/readme.txt": {
			ModTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Size:    10,
		},
		"images/logo.png": {
			ModTime: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Size:    20,
		},
	}
	mockS3Client := NewMockClient(mockBucketList)
	appConfig := AppConfig{Bucket: "not-real-bucket", RootPath: t.TempDir()}
	syncHandler := NewSyncHandler(mockS3Client, appConfig, nil)

	response, handleErr := syncHandler.Handle(context.Background(), nil)

	assert.Nil(t, handleErr)
	assert.Equal(t, 200, response.StatusCode)

	var report syncReport
	assert.Nil(t, json.Unmarshal([]byte(response.Body), &report))
	assert.Equal(t, "Sync completed", report.Message)
	assert.Equal(t, 2, *report.DownloadedFiles)
	assert.Equal(t, 0, *report.Errors)
	assert.ElementsMatch(t, report.Details.Downloaded, []string{"docs/readme.txt", "images/logo.png"})
	assert.Len(t, report.Details.Errors, 0)
	_, parseErr := time.Parse(time.RFC3339, report.Timestamp)
	assert.Nil(t, parseErr)
}

func TestPerObjectErrorsStillReturn200(t *testing.T) {
	mockBucketList := map[string]ObjectInfo{
		"good.txt": {ModTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Size: 1},
		"bad.txt":  {ModTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Size: 1},
	}
	mockS3Client := NewMockClient(mockBucketList)
	mockS3Client.DownloadErrs["bad.txt"] = errors.New("simulated io error")
	appConfig := AppConfig{Bucket: "not-real-bucket", RootPath: t.TempDir()}
	syncHandler := NewSyncHandler(mockS3Client, appConfig, nil)

	response, handleErr := syncHandler.Handle(context.Background(), nil)

	assert.Nil(t, handleErr)
	assert.Equal(t, 200, response.StatusCode)

	var report syncReport
	assert.Nil(t, json.Unmarshal([]byte(response.Body), &report))
	assert.Equal(t, 1, *report.DownloadedFiles)
	assert.Equal(t, 1, *report.Errors)
	assert.Contains(t, report.Details.Errors[0], "bad.txt")
}

func TestListFailureReturns500(t *testing.T) {
	mockS3Client := NewMockClient(map[string]ObjectInfo{})
	mockS3Client.ListErr = errors.New("access denied")
	appConfig := AppConfig{Bucket: "not-real-bucket", RootPath: t.TempDir()}
	syncHandler := NewSyncHandler(mockS3Client, appConfig, nil)

	response, handleErr := syncHandler.Handle(context.Background(), nil)

	assert.Nil(t, handleErr)
	assert.Equal(t, 500, response.StatusCode)

	var report errorReport
	assert.Nil(t, json.Unmarshal([]byte(response.Body), &report))
	assert.Contains(t, report.Error, "access denied")
}

func TestNotifierCalledOnPerObjectErrors(t *testing.T) {
	mockBucketList := map[string]ObjectInfo{
		"bad.txt": {ModTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Size: 1},
	}
	mockS3Client := NewMockClient(mockBucketList)
	mockS3Client.DownloadErrs["bad.txt"] = errors.New("simulated io error")
	mockNotifier := &SNSNotifier{Client: NewMockSNSClient(), Topic: "mock-topic"}
	appConfig := AppConfig{Bucket: "not-real-bucket", RootPath: t.TempDir()}
	syncHandler := NewSyncHandler(mockS3Client, appConfig, mockNotifier)

	response, handleErr := syncHandler.Handle(context.Background(), nil)

	assert.Nil(t, handleErr)
	assert.Equal(t, 200, response.StatusCode)

	mockSNSClient := mockNotifier.Client.(*MockSNSClient)
	assert.Len(t, mockSNSClient.PublishRequests, 1)
}
