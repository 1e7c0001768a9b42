// Package logging provides logging configuration.
package logging

import (
	"fmt"

	"github.com/jonesrussell/ssgclient/internal/logger"
)

// Config represents logging configuration.
type Config struct {
	// Level is the minimum logging level (debug, info, warn, error, fatal).
	Level string `yaml:"level" env:"LOG_LEVEL"`
	// Encoding sets the log output format ("console" or "json").
	Encoding string `yaml:"encoding" env:"LOG_FORMAT"`
	// Development enables development-friendly formatting.
	Development bool `yaml:"development"`
	// EnableColor enables colored level output in development mode.
	EnableColor bool `yaml:"enable_color"`
	// OutputPaths is a list of paths to write log output to.
	OutputPaths []string `yaml:"output_paths"`
}

// NewConfig returns a new logging configuration with default values.
func NewConfig() *Config {
	return &Config{
		Level:    string(logger.DefaultLevel),
		Encoding: logger.DefaultEncoding,
	}
}

// Validate validates the logging configuration.
func (c *Config) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level %q", c.Level)
	}
	switch c.Encoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log encoding %q", c.Encoding)
	}
	return nil
}

// ToLoggerConfig converts the logging configuration to a logger.Config.
func (c *Config) ToLoggerConfig() *logger.Config {
	return &logger.Config{
		Level:       logger.Level(c.Level),
		Encoding:    c.Encoding,
		Development: c.Development,
		EnableColor: c.EnableColor,
		OutputPaths: c.OutputPaths,
	}
}
