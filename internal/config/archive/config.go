// Package archive provides response-archiving configuration.
package archive

import (
	"errors"
	"time"
)

// MinIOConfig represents the optional MinIO object-storage target.
type MinIOConfig struct {
	// Enabled toggles uploads to MinIO on/off.
	Enabled bool `yaml:"enabled" env:"SSG_MINIO_ENABLED"`
	// Endpoint is the MinIO server address (e.g., "minio:9000").
	Endpoint string `yaml:"endpoint" env:"SSG_MINIO_ENDPOINT"`
	// AccessKey for MinIO authentication.
	AccessKey string `yaml:"access_key" env:"SSG_MINIO_ACCESS_KEY"`
	// SecretKey for MinIO authentication.
	SecretKey string `yaml:"secret_key" env:"SSG_MINIO_SECRET_KEY"`
	// UseSSL enables HTTPS for MinIO connections.
	UseSSL bool `yaml:"use_ssl" env:"SSG_MINIO_USE_SSL"`
	// Bucket is the bucket for archived API responses.
	Bucket string `yaml:"bucket" env:"SSG_MINIO_BUCKET"`
	// UploadTimeout is the timeout for upload operations.
	UploadTimeout time.Duration `yaml:"upload_timeout"`
	// FailSilently keeps a fetch successful even when the upload fails.
	FailSilently bool `yaml:"fail_silently"`
}

// Config represents response-archiving configuration. Responses are always
// written to the local data directory; MinIO is an additional target.
type Config struct {
	// DataDir is the root directory for archived JSON responses.
	DataDir string `yaml:"data_dir" env:"SSG_DATA_DIR"`
	// MinIO holds the optional object-storage target.
	MinIO MinIOConfig `yaml:"minio"`
}

// Default values for the archive configuration.
const (
	DefaultDataDir       = "data"
	defaultBucket        = "ssg-api-responses"
	defaultUploadTimeout = 30 * time.Second
)

// NewConfig returns a new archive configuration with default values.
func NewConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		MinIO: MinIOConfig{
			Enabled:       false,
			Endpoint:      "localhost:9000",
			Bucket:        defaultBucket,
			UploadTimeout: defaultUploadTimeout,
			FailSilently:  true,
		},
	}
}

// Validate validates the archive configuration.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("archive data_dir is required")
	}
	if !c.MinIO.Enabled {
		return nil
	}
	if c.MinIO.Endpoint == "" {
		return errors.New("minio endpoint required when enabled")
	}
	if c.MinIO.AccessKey == "" {
		return errors.New("minio access_key required when enabled")
	}
	if c.MinIO.SecretKey == "" {
		return errors.New("minio secret_key required when enabled")
	}
	if c.MinIO.Bucket == "" {
		return errors.New("minio bucket required when enabled")
	}
	if c.MinIO.UploadTimeout <= 0 {
		return errors.New("minio upload_timeout must be greater than 0")
	}
	return nil
}
