// Package api provides SSG-WSG API client configuration.
package api

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// TLSConfig holds the client-certificate material for mutual TLS.
// The SSG-WSG APIs authenticate callers solely through the presented
// certificate; there is no token or password path.
type TLSConfig struct {
	// CertFile is the path to the PEM-encoded client certificate.
	CertFile string `yaml:"cert_file" env:"SSG_API_CERT_FILE"`
	// KeyFile is the path to the PEM-encoded private key.
	KeyFile string `yaml:"key_file" env:"SSG_API_KEY_FILE"`
	// CAFile is an optional PEM bundle used to verify the server certificate.
	CAFile string `yaml:"ca_file" env:"SSG_API_CA_FILE"`
	// InsecureSkipVerify disables server certificate verification.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" env:"SSG_API_SKIP_TLS_VERIFY"`
}

// Config represents the SSG-WSG API configuration.
type Config struct {
	// BaseURL is the API origin, e.g. "https://api.ssg-wsg.sg".
	BaseURL string `yaml:"base_url" env:"SSG_API_BASE_URL"`
	// Timeout is the per-request timeout.
	Timeout time.Duration `yaml:"timeout" env:"SSG_API_TIMEOUT"`
	// DefaultVersion is the x-api-version header sent when an endpoint
	// does not specify its own version.
	DefaultVersion string `yaml:"default_version" env:"SSG_API_DEFAULT_VERSION"`
	// TLS holds the client certificate configuration.
	TLS TLSConfig `yaml:"tls"`
}

// Default values for the API configuration.
const (
	DefaultBaseURL = "https://api.ssg-wsg.sg"
	DefaultTimeout = 30 * time.Second
	DefaultVersion = "v1"

	defaultCertFile = "certificates/cert.pem"
	defaultKeyFile  = "certificates/key.pem"
)

// NewConfig returns a new API configuration with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		Timeout:        DefaultTimeout,
		DefaultVersion: DefaultVersion,
		TLS: TLSConfig{
			CertFile: defaultCertFile,
			KeyFile:  defaultKeyFile,
		},
	}
}

// Validate validates the API configuration. Certificate and key files must
// exist before any request is attempted.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("api base_url is required")
	}
	if c.Timeout <= 0 {
		return errors.New("api timeout must be greater than 0")
	}
	if c.TLS.CertFile == "" {
		return errors.New("api tls cert_file is required")
	}
	if c.TLS.KeyFile == "" {
		return errors.New("api tls key_file is required")
	}
	if _, err := os.Stat(c.TLS.CertFile); err != nil {
		return fmt.Errorf("certificate file not found: %s", c.TLS.CertFile)
	}
	if _, err := os.Stat(c.TLS.KeyFile); err != nil {
		return fmt.Errorf("key file not found: %s", c.TLS.KeyFile)
	}
	return nil
}
