// Package config provides configuration loading for cmd/gpart.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the gpart CLI. Values come from (in
// increasing priority) defaults, a config file, environment variables
// prefixed GPART_, and command-line flags bound by the caller.
type Config struct {
	Partition PartitionConfig `mapstructure:"partition"`
	Log       LogConfig       `mapstructure:"log"`
}

// PartitionConfig holds defaults for the partition subcommand.
type PartitionConfig struct {
	Seed    int64 `mapstructure:"seed"`
	Regular bool  `mapstructure:"regular"`
}

// LogConfig holds logging defaults.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration, used when no config file is
// present.
func Default() *Config {
	return &Config{
		Partition: PartitionConfig{Seed: 0, Regular: false},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads configuration from path (if non-empty) and from GPART_-prefixed
// environment variables, layered over Default.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("gpart")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("partition.seed", def.Partition.Seed)
	v.SetDefault("partition.regular", def.Partition.Regular)
	v.SetDefault("log.level", def.Log.Level)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("gpart: load config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("gpart: parse config: %w", err)
	}
	return &cfg, nil
}
