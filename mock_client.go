package main

import (
	"context"
	"os"
)

type MockRequest struct {
	Bucket    string
	Key       string
	LocalPath string
}

type MockS3Client struct {
	DownloadRequests []MockRequest
	UploadRequests   []MockRequest
	HeadRequests     []MockRequest
	ListErr          error
	DownloadErrs     map[string]error
	HeadErrs         map[string]error
	UploadErrs       map[string]error
	mockList         map[string]ObjectInfo
	mockHead         map[string]ObjectInfo
}

func NewMockClient(mocked map[string]ObjectInfo) *MockS3Client {
	return &MockS3Client{
		DownloadRequests: make([]MockRequest, 0),
		UploadRequests:   make([]MockRequest, 0),
		HeadRequests:     make([]MockRequest, 0),
		DownloadErrs:     make(map[string]error),
		HeadErrs:         make(map[string]error),
		UploadErrs:       make(map[string]error),
		mockList:         mocked,
		mockHead:         mocked,
	}
}

func (s *MockS3Client) ListObjects(ctx context.Context, bucketName string) (map[string]ObjectInfo, error) {
	return s.mockList, s.ListErr
}

func (s *MockS3Client) DownloadFile(ctx context.Context, bucketName, key, localPath string) error {
	s.DownloadRequests = append(s.DownloadRequests, MockRequest{Bucket: bucketName, Key: key, LocalPath: localPath})
	if downloadErr, ok := s.DownloadErrs[key]; ok {
		return downloadErr
	}
	return os.WriteFile(localPath, []byte(key), 0o644)
}

func (s *MockS3Client) HeadObject(ctx context.Context, bucketName, key string) (*ObjectInfo, error) {
	s.HeadRequests = append(s.HeadRequests, MockRequest{Bucket: bucketName, Key: key})
	if headErr, ok := s.HeadErrs[key]; ok {
		return nil, headErr
	}
	if remoteObj, ok := s.mockHead[key]; ok {
		return &remoteObj, nil
	}
	return nil, nil
}

func (s *MockS3Client) UploadFile(ctx context.Context, bucketName, key string, file *os.File) error {
	s.UploadRequests = append(s.UploadRequests, MockRequest{Bucket: bucketName, Key: key})
	if uploadErr, ok := s.UploadErrs[key]; ok {
		return uploadErr
	}
	return nil
}
