package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// FromViper builds a Config from the settings currently held by Viper.
// The root command binds flags, environment variables and defaults into
// Viper; this decodes the merged result onto the typed config tree.
// Values already present on cfg are only overwritten by keys Viper knows.
func FromViper(v *viper.Viper, cfg *Config) (*Config, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("create config decoder: %w", err)
	}

	if decodeErr := decoder.Decode(v.AllSettings()); decodeErr != nil {
		return nil, fmt.Errorf("decode config: %w", decodeErr)
	}

	setDefaults(cfg)

	// Env overrides still win over file and flag values
	applyEnvOverrides(cfg)
	return cfg, nil
}
