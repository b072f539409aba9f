// Package config loads LayoutConfig from an optional YAML file and
// SDKLAYOUT_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/errors"
	"github.com/bundlekit/sdklayout/log"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. SDKLAYOUT_LOG_LEVEL.
	EnvPrefix = "SDKLAYOUT"

	fileType = "yaml"
)

// Load reads path (skipped when empty), applies environment overrides on top
// and falls back to entities.DefaultLayoutConfig for anything left unset.
// overrides are applied last, so command-line flags win over both.
func Load(path string, overrides ...entities.ConfigOption) (entities.LayoutConfig, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return entities.LayoutConfig{}, &errors.ConfigError{
				Err: fmt.Errorf("reading %s: %w", path, err),
			}
		}
	}

	var cfg entities.LayoutConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return entities.LayoutConfig{}, &errors.ConfigError{Err: fmt.Errorf("decoding layout config: %w", err)}
	}
	cfg = cfg.With(overrides...)
	if err := Validate(cfg); err != nil {
		return entities.LayoutConfig{}, err
	}
	return cfg, nil
}

// Validate checks the fields that have a closed set of values.
func Validate(cfg entities.LayoutConfig) error {
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return &errors.ConfigError{Field: "log_level", Err: err}
	}
	if _, err := log.ParseFormat(cfg.LogFormat); err != nil {
		return &errors.ConfigError{Field: "log_format", Err: err}
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := entities.NewLayoutConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("parallelism", defaults.Parallelism)
	v.SetDefault("log_timestamp", defaults.LogTimestamp)
	return v
}
