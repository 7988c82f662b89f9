package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type syncDetails struct {
	Downloaded []string `json:"downloaded"`
	Errors     []string `json:"errors"`
}

type syncReport struct {
	Message         string       `json:"message"`
	DownloadedFiles *int         `json:"downloaded_files,omitempty"`
	Errors          *int         `json:"errors,omitempty"`
	Timestamp       string       `json:"timestamp"`
	Details         *syncDetails `json:"details,omitempty"`
}

type errorReport struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// SyncHandler carries the trigger contract: the event payload is opaque and
// unused, all outcomes are reported through the structured Response body.
// Per-object errors still produce a 200; only aborts before the per-object
// loop produce a 500.
type SyncHandler struct {
	client    BucketClient
	appConfig AppConfig
	notifier  Notifier
}

func NewSyncHandler(client BucketClient, appConfig AppConfig, notifier Notifier) *SyncHandler {
	return &SyncHandler{
		client:    client,
		appConfig: appConfig,
		notifier:  notifier,
	}
}

func (h *SyncHandler) Handle(ctx context.Context, event json.RawMessage) (Response, error) {
	if configErr := h.appConfig.Validate(); configErr != nil {
		log.Error(fmt.Sprintf("Sync invocation error: %s", configErr))
		return errorResponse(configErr), nil
	}

	log.Info(fmt.Sprintf("Starting sync for bucket: %s", h.appConfig.Bucket))
	log.Info(fmt.Sprintf("Local mount path: %s", h.appConfig.RootPath))

	result, syncErr := doDownloadSync(ctx, h.client, h.appConfig.Bucket, h.appConfig.RootPath)
	if syncErr != nil {
		log.Error(fmt.Sprintf("Sync invocation error: %s", syncErr))
		return errorResponse(syncErr), nil
	}

	if h.notifier != nil && len(result.Errors) > 0 {
		if notifyErr := h.notifier.NotifySyncResults(h.appConfig.Bucket, result); notifyErr != nil {
			log.Warn(fmt.Sprintf("Error publishing sync notification: %s", notifyErr))
		}
	}

	if result.Total == 0 {
		return reportResponse(syncReport{
			Message:   "No objects to sync",
			Timestamp: isoTimestamp(),
		}), nil
	}

	downloaded := len(result.Synced)
	errored := len(result.Errors)

	return reportResponse(syncReport{
		Message:         "Sync completed",
		DownloadedFiles: &downloaded,
		Errors:          &errored,
		Timestamp:       isoTimestamp(),
		Details: &syncDetails{
			Downloaded: result.Synced,
			Errors:     result.Errors,
		},
	}), nil
}

func reportResponse(report syncReport) Response {
	body, _ := json.Marshal(report)
	return Response{StatusCode: 200, Body: string(body)}
}

func errorResponse(err error) Response {
	body, _ := json.Marshal(errorReport{
		Error:     err.Error(),
		Timestamp: isoTimestamp(),
	})
	return Response{StatusCode: 500, Body: string(body)}
}

func isoTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
