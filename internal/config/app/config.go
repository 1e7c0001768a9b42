// Package app provides application-level configuration.
package app

// Config represents application-level configuration.
type Config struct {
	// Name is the application name.
	Name string `yaml:"name" env:"APP_NAME"`
	// Version is the application version.
	Version string `yaml:"version"`
	// Environment is the runtime environment (development or production).
	Environment string `yaml:"environment" env:"APP_ENV"`
	// Debug enables debug logging and verbose output.
	Debug bool `yaml:"debug" env:"APP_DEBUG"`
}

// Default values for the application configuration.
const (
	DefaultName        = "ssgclient"
	DefaultVersion     = "1.0.0"
	DefaultEnvironment = "production"
)

// NewConfig returns a new application configuration with default values.
func NewConfig() *Config {
	return &Config{
		Name:        DefaultName,
		Version:     DefaultVersion,
		Environment: DefaultEnvironment,
	}
}

// IsDevelopment reports whether the application runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
