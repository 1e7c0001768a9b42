// Package cmd implements the command-line interface for ssgclient.
// It provides the root command and subcommands for calling the SSG-WSG
// Course Directory and Skills Framework APIs.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joho/godotenv"
	cmdcourses "github.com/jonesrussell/ssgclient/cmd/courses"
	cmdskills "github.com/jonesrussell/ssgclient/cmd/skills"
	cmdsync "github.com/jonesrussell/ssgclient/cmd/sync"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands
	Debug bool

	// rootCmd represents the root command for the ssgclient CLI.
	rootCmd = &cobra.Command{
		Use:   "ssgclient",
		Short: "A client for the SSG-WSG Course Directory and Skills Framework APIs",
		Long: `A command-line client for the SSG-WSG developer APIs.

Requests authenticate with a client certificate; responses are printed
and archived as raw JSON under the data directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get debug flag before creating logger
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ssgclient version %s\n", "1.0.0")
		},
	})

	// Add subcommands
	rootCmd.AddCommand(cmdcourses.Command())
	rootCmd.AddCommand(cmdskills.Command())
	rootCmd.AddCommand(cmdsync.Command())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// godotenv.Load is idempotent and never overwrites variables that are
	// already set, so calling it here as well as in Execute() is safe.
	_ = godotenv.Load()

	// Environment variables take precedence over defaults.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; defaults and environment variables cover
	// everything it would provide.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: config file not read: %v\n", err)
		}
	}

	if err := bindCommandLineFlags(); err != nil {
		return err
	}

	if err := bindAppEnvVars(); err != nil {
		return err
	}

	setupDevelopmentLogging()

	return nil
}

// bindCommandLineFlags binds command-line flags to Viper.
func bindCommandLineFlags() error {
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}
	return nil
}

// bindAppEnvVars binds application and logger environment variables to config keys.
func bindAppEnvVars() error {
	binds := map[string][]string{
		"app.environment":          {"APP_ENV"},
		"app.debug":                {"APP_DEBUG"},
		"logging.level":            {"LOG_LEVEL"},
		"logging.encoding":         {"LOG_FORMAT"},
		"api.base_url":             {"SSG_API_BASE_URL"},
		"api.timeout":              {"SSG_API_TIMEOUT"},
		"api.default_version":      {"SSG_API_DEFAULT_VERSION"},
		"api.tls.cert_file":        {"SSG_API_CERT_FILE"},
		"api.tls.key_file":         {"SSG_API_KEY_FILE"},
		"api.tls.ca_file":          {"SSG_API_CA_FILE"},
		"archive.data_dir":         {"SSG_DATA_DIR"},
		"archive.minio.enabled":    {"SSG_MINIO_ENABLED"},
		"archive.minio.endpoint":   {"SSG_MINIO_ENDPOINT"},
		"archive.minio.access_key": {"SSG_MINIO_ACCESS_KEY", "MINIO_ROOT_USER"},
		"archive.minio.secret_key": {"SSG_MINIO_SECRET_KEY", "MINIO_ROOT_PASSWORD"},
		"archive.minio.bucket":     {"SSG_MINIO_BUCKET"},
		"snapshot.enabled":         {"SSG_SNAPSHOT_ENABLED"},
		"snapshot.path":            {"SSG_SNAPSHOT_PATH"},
		"snapshot.schedule":        {"SSG_SNAPSHOT_SCHEDULE"},
	}
	for key, envs := range binds {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

// setupDevelopmentLogging configures development logging settings based on
// environment and debug flag.
func setupDevelopmentLogging() {
	debugFlag := Debug || viper.GetBool("app.debug")
	isDev := viper.GetString("app.environment") == "development"

	if debugFlag {
		viper.Set("logging.level", "debug")
	}

	if isDev {
		viper.Set("logging.development", true)
		viper.Set("logging.enable_color", true)
		viper.Set("logging.encoding", "console")
	}

	Debug = debugFlag
}

// setDefaults sets default configuration values
func setDefaults() {
	// App defaults - production safe
	viper.SetDefault("app", map[string]any{
		"name":        "ssgclient",
		"version":     "1.0.0",
		"environment": "production",
		"debug":       false,
	})

	// Logging defaults - production safe
	viper.SetDefault("logging", map[string]any{
		"level":        "info",
		"development":  false,
		"encoding":     "json",
		"output_paths": []string{"stderr"},
		"enable_color": false,
	})

	// SSG-WSG API defaults
	viper.SetDefault("api", map[string]any{
		"base_url":        "https://api.ssg-wsg.sg",
		"timeout":         "30s",
		"default_version": "v1",
		"tls": map[string]any{
			"cert_file":            "certificates/cert.pem",
			"key_file":             "certificates/key.pem",
			"insecure_skip_verify": false,
		},
	})

	// Archive defaults
	viper.SetDefault("archive", map[string]any{
		"data_dir": "data",
		"minio": map[string]any{
			"enabled":        false,
			"endpoint":       "localhost:9000",
			"use_ssl":        false,
			"bucket":         "ssg-api-responses",
			"upload_timeout": "30s",
			"fail_silently":  true,
		},
	})

	// Snapshot defaults
	viper.SetDefault("snapshot", map[string]any{
		"enabled": false,
		"path":    "data/snapshots.db",
	})
}
