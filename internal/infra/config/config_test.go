package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	require.False(t, cfg.Provider.Configured())
	require.Equal(t, 1, cfg.Provider.MaxConcurrency)
	require.False(t, cfg.HTTP.Retry.Enabled)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
http:
  address: ":9090"
  allowedOrigins: ["https://quotes.example.com"]
provider:
  baseUrl: "https://rating.example.com/v1"
  timeout: 5s
  maxConcurrency: 4
cancer:
  carrierName: "Great Southern"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PROVIDER_API_TOKEN", "real-token")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("PROVIDER_MAX_CONCURRENCY", "2")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "https://rating.example.com/v1", cfg.Provider.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Provider.Timeout)
	require.Equal(t, 2, cfg.Provider.MaxConcurrency)
	require.True(t, cfg.Provider.Configured())
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "Great Southern", cfg.Cancer.CarrierName)
	require.Equal(t, "x-api-token", cfg.Provider.AuthHeader)
}

func TestProviderConfigured(t *testing.T) {
	require.False(t, ProviderConfig{}.Configured())
	require.False(t, ProviderConfig{APIToken: "  "}.Configured())
	require.False(t, ProviderConfig{APIToken: PlaceholderProviderToken}.Configured())
	require.True(t, ProviderConfig{APIToken: "abc"}.Configured())
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"empty address":       func(c *Config) { c.HTTP.Address = "" },
		"empty base url":      func(c *Config) { c.Provider.BaseURL = " " },
		"zero timeout":        func(c *Config) { c.Provider.Timeout = 0 },
		"zero concurrency":    func(c *Config) { c.Provider.MaxConcurrency = 0 },
		"inverted tiers":      func(c *Config) { c.Discovery.HotLeadScore = 30 },
		"hot above cap":       func(c *Config) { c.Discovery.HotLeadScore = 120 },
		"zero rpm":            func(c *Config) { c.HTTP.RateLimit.RequestsPerMinute = 0 },
		"valkey without addr": func(c *Config) { c.HTTP.RateLimit.Valkey.Enabled = true },
		"retry without tries": func(c *Config) {
			c.HTTP.Retry.Enabled = true
			c.HTTP.Retry.MaxAttempts = 0
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
