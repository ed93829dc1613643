package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.NotEmpty(t, cfg.Session.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "8080", cfg.Stub.Port)
	assert.NotEmpty(t, cfg.Stub.AdminKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INVPRO_API_BASE_URL", "https://inventory.example.com/api")
	t.Setenv("INVPRO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://inventory.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_RejectsRelativeBaseURL(t *testing.T) {
	t.Setenv("INVPRO_API_BASE_URL", "/api")

	_, err := Load()

	assert.Error(t, err)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "http://localhost:8080/api", Timeout: -time.Second}}
	assert.Error(t, cfg.validate())
}
