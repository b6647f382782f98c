package config

import "github.com/JaimeStill/backup-service/pkg/logging"

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
	Source: "LOGGING_SOURCE",
}

// LoggingConfig wraps logging.Config with the service's environment variable names.
type LoggingConfig struct {
	logging.Config
}

// Finalize applies defaults, loads environment overrides, and validates the logging configuration.
func (c *LoggingConfig) Finalize() error {
	return c.Config.Finalize(loggingEnv)
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *LoggingConfig) Merge(overlay *LoggingConfig) {
	c.Config.Merge(&overlay.Config)
}
