// Package config loads the resolver's process configuration: the raw
// alias definitions, the placement strict-mode flag and logger verbosity.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// PCI_RESOLVER_LOG_LEVEL.
const EnvPrefix = "PCI_RESOLVER"

// Config is the resolver's process configuration. It satisfies
// alias.Source, so the alias loader can read from it directly.
type Config struct {
	// Alias holds the raw alias definitions, one JSON object per entry,
	// in configuration order.
	Alias []string `mapstructure:"alias"`

	// PCIInPlacement enables the placement-integrated validation rules:
	// one spec per alias, identifiers or a resource class required.
	PCIInPlacement bool `mapstructure:"pci_in_placement"`

	// LogLevel selects logger verbosity: info, debug or trace.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from the given file, applying environment
// overrides. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{"alias", "pci_in_placement", "log_level"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding environment for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks for invalid configuration values. Alias entry contents
// are not validated here; the alias loader owns that.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "info", "debug", "trace":
	default:
		return fmt.Errorf("log_level must be info, debug or trace, got %q", c.LogLevel)
	}
	return nil
}

// AliasDefinitions implements alias.Source.
func (c *Config) AliasDefinitions() []string {
	return c.Alias
}

// PlacementEnabled implements alias.Source.
func (c *Config) PlacementEnabled() bool {
	return c.PCIInPlacement
}
