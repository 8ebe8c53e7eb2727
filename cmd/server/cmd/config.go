package cmd

import (
	"eventregistration/config"
)

// loadConfig reads configuration from the environment and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}
