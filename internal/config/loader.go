package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Init reads ServiceConfig from the environment, e.g. LOG_LEVEL or OTEL_ENABLED.
// Build-time ServiceVersion and CommitSHA take precedence over
// APP_SERVICE_VERSION and APP_COMMIT_SHA.
func Init() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	if len(ServiceVersion) != 0 {
		cfg.App.ServiceVersion = ServiceVersion
	}

	if len(CommitSHA) != 0 {
		cfg.App.CommitSHA = CommitSHA
	}

	return cfg, nil
}
