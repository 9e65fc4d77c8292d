// Package config defines process configuration and loading hooks.
//
// Conventions:
//   - Configuration covers ambient concerns only (logging, metrics export).
//     Course and grade data are compiled in and never configurable.
//   - All functions accept context.Context as the first parameter.
//   - External errors are wrapped with this package's sentinel errors.
package config

import (
	"context"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// MetricsTextfile, when set, receives a Prometheus textfile export of the
	// run's metrics.
	MetricsTextfile string `koanf:"metrics_textfile"`
}

// New creates a Config with defaults. A default run logs only warnings and
// above, so stdout carries nothing but the report.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "warn",
		LogFormat:       "text",
		MetricsTextfile: "",
	}
}
