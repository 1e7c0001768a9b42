// Package snapshot provides snapshot-store configuration.
package snapshot

import "errors"

// Config represents the local snapshot store configuration.
type Config struct {
	// Enabled toggles recording of fetch runs into the snapshot store.
	Enabled bool `yaml:"enabled" env:"SSG_SNAPSHOT_ENABLED"`
	// Path is the SQLite database file path.
	Path string `yaml:"path" env:"SSG_SNAPSHOT_PATH"`
	// Schedule is the cron expression for scheduled syncs (empty disables).
	Schedule string `yaml:"schedule" env:"SSG_SNAPSHOT_SCHEDULE"`
}

// DefaultPath is the default SQLite database file path.
const DefaultPath = "data/snapshots.db"

// NewConfig returns a new snapshot configuration with default values.
func NewConfig() *Config {
	return &Config{
		Enabled: false,
		Path:    DefaultPath,
	}
}

// Validate validates the snapshot configuration.
func (c *Config) Validate() error {
	if c.Enabled && c.Path == "" {
		return errors.New("snapshot path required when enabled")
	}
	return nil
}
