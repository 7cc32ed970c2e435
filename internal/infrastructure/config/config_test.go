package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/stellar-homestead/internal/infrastructure/config"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "normal", cfg.Game.Difficulty)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "homestead.db", cfg.Database.Path)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestValidateConfig_RejectsUnknownDifficulty(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Game.Difficulty = "brutal"

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Difficulty")
}

func TestValidateConfig_RejectsPrivilegedMetricsPort(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Metrics.Port = 80

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port")
}

func TestMetricsConfig_Address(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	assert.Equal(t, "localhost:9090", cfg.Metrics.Address())
}
