// Package common provides shared utilities for command implementations.
package common

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jonesrussell/ssgclient/internal/config"
	"github.com/jonesrussell/ssgclient/internal/logger"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// CommandDeps holds common dependencies for all commands.
// Use this instead of context.Value for type-safe dependency injection.
type CommandDeps struct {
	Logger logger.Interface
	Config config.Interface
	Client *ssg.Client
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	if d.Client == nil {
		return ErrClientRequired
	}
	return nil
}

// NewCommandDeps creates CommandDeps by loading config, creating the logger
// and constructing the certificate-authenticated API client.
// This consolidates the common initialization code for every subcommand.
func NewCommandDeps() (CommandDeps, error) {
	cfg, err := config.FromViper(viper.GetViper(), nil)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate config: %w", validateErr)
	}

	log, err := logger.New(cfg.GetLoggingConfig().ToLoggerConfig())
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	client, err := NewAPIClient(cfg, log)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create api client: %w", err)
	}

	deps := CommandDeps{
		Logger: log,
		Config: cfg,
		Client: client,
	}

	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}
