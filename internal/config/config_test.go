package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultDataset, cfg.Dataset)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultMode, cfg.Mode)
	assert.Equal(t, DefaultLimit, cfg.Limit)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("RECOMMENDER_PORT", "9090")
	t.Setenv("RECOMMENDER_MODE", "rules")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "rules", cfg.Mode)
}

func TestValidate_Failures(t *testing.T) {
	base := Config{
		Dataset: DefaultDataset,
		Model:   DefaultModel,
		Port:    DefaultPort,
		Mode:    DefaultMode,
		Limit:   DefaultLimit,
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Port = 0 }},
		{"port too high", func(c *Config) { c.Port = 70000 }},
		{"unknown mode", func(c *Config) { c.Mode = "ensemble" }},
		{"limit zero", func(c *Config) { c.Limit = 0 }},
		{"empty dataset", func(c *Config) { c.Dataset = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
