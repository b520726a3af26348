package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.thefantasyfootballers.com", cfg.Site.BaseURL)
	assert.Equal(t, "https://www.thefantasyfootballers.com/wp-json", cfg.Site.APIBase)
	assert.Equal(t, "thefantasyfootballers.com", cfg.Site.Domain)
	assert.Equal(t, "/login/", cfg.Auth.LoginPath)
	assert.Equal(t, 120, cfg.Auth.LoginTimeoutSecs)
	assert.Equal(t, 24, cfg.Cache.PlayersTTLHours)
	assert.Equal(t, 60, cfg.Cache.ProjectionsTTLMins)
	assert.Equal(t, 30, cfg.Cache.NewsTTLMins)
	assert.Equal(t, 55, cfg.Resolver.SearchThreshold)
	assert.Equal(t, 60, cfg.Resolver.ResolveThreshold)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadCredentialEnvFallback(t *testing.T) {
	t.Setenv("FFB_USERNAME", "me@example.com")
	t.Setenv("FFB_PASSWORD", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "me@example.com", cfg.Auth.Username)
	assert.Equal(t, "hunter2", cfg.Auth.Password)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FFB_LOG_LEVEL", "debug")
	t.Setenv("FFB_RESOLVER_SEARCH_THRESHOLD", "70")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 70, cfg.Resolver.SearchThreshold)
}

func TestInitLoggerRejectsBadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	require.Error(t, err)
}

func TestPaths(t *testing.T) {
	p, err := SessionPath()
	require.NoError(t, err)
	assert.Contains(t, p, "ffb")
	assert.Contains(t, p, "session.json")

	d, err := CacheDir()
	require.NoError(t, err)
	assert.Contains(t, d, "cache")
}
