package main

import (
	"fmt"

	"github.com/jinzhu/configor"
	log "github.com/sirupsen/logrus"
)

type AppConfig struct {
	Bucket       string `env:"S3_BUCKET" required:"true"`
	RootPath     string `env:"EFS_PATH" required:"true"`
	LogLevel     string `env:"LOG_LEVEL" default:"info"`
	Provider     string `env:"PROVIDER" default:"aws"`
	AWSRegion    string `env:"AWS_REGION"`
	IAMProfile   string `env:"IAM_PROFILE"`
	SNSTopic     string `env:"SNS_TOPIC"`
	SyncInterval int    `env:"SYNC_INTERVAL"`
}

func LoadAppConfig() (AppConfig, error) {
	var appConfig AppConfig
	loadErr := configor.New(&configor.Config{ENVPrefix: "-"}).Load(&appConfig)
	if loadErr != nil {
		return appConfig, loadErr
	}

	return appConfig, nil
}

// Validate exists separately from LoadAppConfig because the lambda runtime
// keeps the process (and a possibly-bad config) alive across invocations:
// every invocation has to fail on missing config, not just the first.
func (c AppConfig) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("required configuration S3_BUCKET not set")
	}
	if c.RootPath == "" {
		return fmt.Errorf("required configuration EFS_PATH not set")
	}

	return nil
}

func (c AppConfig) ApplyLogLevel() {
	level, parseErr := log.ParseLevel(c.LogLevel)
	if parseErr != nil {
		log.Warn(fmt.Sprintf("Unknown log level %q, defaulting to info", c.LogLevel))
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func (c AppConfig) ConfigStringArray() []string {
	configStrArr := make([]string, 0)
	configStrArr = append(configStrArr, fmt.Sprintf("  - Bucket: %s", c.Bucket))
	configStrArr = append(configStrArr, fmt.Sprintf("  - RootPath: %s", c.RootPath))
	configStrArr = append(configStrArr, fmt.Sprintf("  - Provider: %s", c.Provider))

	if c.SNSTopic != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - SNSTopic: %s", c.SNSTopic))
	}
	if c.SyncInterval != 0 {
		configStrArr = append(configStrArr, fmt.Sprintf("  - SyncInterval: %ds", c.SyncInterval))
	}

	return configStrArr
}
