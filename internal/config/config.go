// Package config carries the runtime configuration for the recommender,
// loaded from an optional YAML file, RECOMMENDER_* environment variables and
// command-line flags via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jonathan/internship-recommender/internal/recommender"
)

// Default artifact locations mirror the repository layout.
const (
	DefaultDataset = "data/careers.csv"
	DefaultModel   = "artifacts/model.gob"
	DefaultPort    = 8000
	DefaultMode    = string(recommender.ModeHybrid)
	DefaultLimit   = 3
)

// Config is the merged runtime configuration.
type Config struct {
	Dataset string `mapstructure:"dataset"`
	Model   string `mapstructure:"model"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	Limit   int    `mapstructure:"limit"`
}

// SetDefaults registers defaults and env bindings on the viper instance.
// Call once before flags are bound.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dataset", DefaultDataset)
	v.SetDefault("model", DefaultModel)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("mode", DefaultMode)
	v.SetDefault("limit", DefaultLimit)
	v.SetEnvPrefix("RECOMMENDER")
	v.AutomaticEnv()
}

// Load unmarshals and validates the configuration.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges; flag defaults already satisfy it.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if _, err := recommender.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Limit < 1 {
		return fmt.Errorf("config error: limit must be at least 1, got %d", c.Limit)
	}
	if c.Dataset == "" {
		return fmt.Errorf("config error: dataset path is empty")
	}
	return nil
}
