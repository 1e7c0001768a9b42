// Package config provides configuration management for the ssgclient application.
package config

import (
	"fmt"

	apicfg "github.com/jonesrussell/ssgclient/internal/config/api"
	"github.com/jonesrussell/ssgclient/internal/config/app"
	archivecfg "github.com/jonesrussell/ssgclient/internal/config/archive"
	"github.com/jonesrussell/ssgclient/internal/config/logging"
	snapshotcfg "github.com/jonesrussell/ssgclient/internal/config/snapshot"
)

// Interface defines the interface for configuration management.
type Interface interface {
	// GetAppConfig returns the application configuration.
	GetAppConfig() *app.Config
	// GetLoggingConfig returns the logging configuration.
	GetLoggingConfig() *logging.Config
	// GetAPIConfig returns the SSG-WSG API configuration.
	GetAPIConfig() *apicfg.Config
	// GetArchiveConfig returns the response-archiving configuration.
	GetArchiveConfig() *archivecfg.Config
	// GetSnapshotConfig returns the snapshot store configuration.
	GetSnapshotConfig() *snapshotcfg.Config
	// Validate validates the configuration.
	Validate() error
}

// Ensure Config implements Interface
var _ Interface = (*Config)(nil)

// Config represents the application configuration.
type Config struct {
	// App holds application-level configuration
	App *app.Config `yaml:"app"`
	// Logging holds logging configuration
	Logging *logging.Config `yaml:"logging"`
	// API holds SSG-WSG API client configuration
	API *apicfg.Config `yaml:"api"`
	// Archive holds response-archiving configuration
	Archive *archivecfg.Config `yaml:"archive"`
	// Snapshot holds snapshot store configuration
	Snapshot *snapshotcfg.Config `yaml:"snapshot"`
}

// Load loads configuration from the specified path. A missing file is not an
// error; defaults and environment variables apply either way.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := loadYAML(path, cfg); err != nil {
		return nil, err
	}

	setDefaults(cfg)

	// Re-apply env overrides after defaults (env always wins)
	applyEnvOverrides(cfg)
	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	// Initialize nil pointers
	if cfg.App == nil {
		cfg.App = app.NewConfig()
	}
	if cfg.Logging == nil {
		cfg.Logging = logging.NewConfig()
	}
	if cfg.API == nil {
		cfg.API = apicfg.NewConfig()
	}
	if cfg.Archive == nil {
		cfg.Archive = archivecfg.NewConfig()
	}
	if cfg.Snapshot == nil {
		cfg.Snapshot = snapshotcfg.NewConfig()
	}

	// Fill zero values on partially-specified sections
	if cfg.App.Name == "" {
		cfg.App.Name = app.DefaultName
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = app.DefaultEnvironment
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = apicfg.DefaultBaseURL
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = apicfg.DefaultTimeout
	}
	if cfg.API.DefaultVersion == "" {
		cfg.API.DefaultVersion = apicfg.DefaultVersion
	}
	if cfg.Archive.DataDir == "" {
		cfg.Archive.DataDir = archivecfg.DefaultDataDir
	}
	if cfg.Snapshot.Path == "" {
		cfg.Snapshot.Path = snapshotcfg.DefaultPath
	}

	// Development environments get console formatting by default
	if cfg.App.IsDevelopment() {
		cfg.Logging.Development = true
		cfg.Logging.EnableColor = true
	}
	if cfg.App.Debug {
		cfg.Logging.Level = "debug"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Archive.Validate(); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	if err := c.Snapshot.Validate(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// GetAppConfig returns the application configuration.
func (c *Config) GetAppConfig() *app.Config {
	if c.App == nil {
		return app.NewConfig()
	}
	return c.App
}

// GetLoggingConfig returns the logging configuration.
func (c *Config) GetLoggingConfig() *logging.Config {
	if c.Logging == nil {
		return logging.NewConfig()
	}
	return c.Logging
}

// GetAPIConfig returns the SSG-WSG API configuration.
func (c *Config) GetAPIConfig() *apicfg.Config {
	if c.API == nil {
		return apicfg.NewConfig()
	}
	return c.API
}

// GetArchiveConfig returns the response-archiving configuration.
func (c *Config) GetArchiveConfig() *archivecfg.Config {
	if c.Archive == nil {
		return archivecfg.NewConfig()
	}
	return c.Archive
}

// GetSnapshotConfig returns the snapshot store configuration.
func (c *Config) GetSnapshotConfig() *snapshotcfg.Config {
	if c.Snapshot == nil {
		return snapshotcfg.NewConfig()
	}
	return c.Snapshot
}
