package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"
)

func main() {
	appConfig, configErr := LoadAppConfig()
	if configErr != nil {
		panic(fmt.Errorf("Error loading configuration: %s", configErr))
	}
	appConfig.ApplyLogLevel()

	for _, configStr := range appConfig.ConfigStringArray() {
		log.Info(configStr)
	}

	ctx := context.Background()
	bucketClient, clientErr := ClientFromConfig(ctx, appConfig)
	if clientErr != nil {
		panic(clientErr)
	}

	var notifier Notifier
	if appConfig.SNSTopic != "" {
		var notifierErr error
		notifier, notifierErr = NewSNSNotifier(ctx, appConfig)
		if notifierErr != nil {
			panic(fmt.Errorf("Error creating sns notifier: %s", notifierErr))
		}
	}

	syncHandler := NewSyncHandler(bucketClient, appConfig, notifier)

	// inside the lambda runtime the trigger drives invocations; outside it
	// we either loop on an interval or run a single pass
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		lambda.Start(syncHandler.Handle)
		return
	}

	if appConfig.SyncInterval > 0 {
		scheduler := gocron.NewScheduler(time.UTC)
		_, scheduleErr := scheduler.Every(appConfig.SyncInterval).Seconds().Do(func() {
			response, _ := syncHandler.Handle(ctx, nil)
			log.Info(fmt.Sprintf("Sync pass finished with status %d: %s", response.StatusCode, response.Body))
		})
		if scheduleErr != nil {
			panic(fmt.Errorf("Error scheduling sync: %s", scheduleErr))
		}
		scheduler.StartBlocking()
		return
	}

	response, _ := syncHandler.Handle(ctx, nil)
	fmt.Println(response.Body)
	if response.StatusCode != 200 {
		os.Exit(1)
	}
}
