package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GlobePalette_Go/internal/countries"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, countries.DefaultReferenceURL, cfg.ReferenceURL)
		assert.Equal(t, 30*time.Minute, cfg.ReferenceTTL)
		assert.Equal(t, 3, cfg.ReferenceMaxAttempts)
		assert.Equal(t, 6, cfg.EnrichSliceSize)
		assert.Equal(t, 512, cfg.PaletteCacheSize)
		assert.Zero(t, cfg.RefreshInterval)
		assert.Equal(t, ConfigPathAliases, cfg.AliasesPath)
		assert.False(t, cfg.PersistenceEnabled())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("REFERENCE_URL", "http://localhost:9999/all")
		t.Setenv("REFERENCE_TTL", "5m")
		t.Setenv("REFERENCE_MAX_ATTEMPTS", "5")
		t.Setenv("FETCH_TIMEOUT", "2s")
		t.Setenv("REFRESH_INTERVAL", "1h")
		t.Setenv("PALETTE_CACHE_SIZE", "64")
		t.Setenv("ENRICH_SLICE_SIZE", "12")
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/globe")
		t.Setenv("ADMIN_API_KEY", "s3cret")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "http://localhost:9999/all", cfg.ReferenceURL)
		assert.Equal(t, 5*time.Minute, cfg.ReferenceTTL)
		assert.Equal(t, 5, cfg.ReferenceMaxAttempts)
		assert.Equal(t, 2*time.Second, cfg.FetchTimeout)
		assert.Equal(t, time.Hour, cfg.RefreshInterval)
		assert.Equal(t, 64, cfg.PaletteCacheSize)
		assert.Equal(t, 12, cfg.EnrichSliceSize)
		assert.True(t, cfg.PersistenceEnabled())
		assert.Equal(t, "s3cret", cfg.AdminAPIKey)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("returns error for invalid values", func(t *testing.T) {
		testCases := []struct {
			name  string
			key   string
			value string
		}{
			{"non-numeric port", "PORT", "not-a-number"},
			{"float port", "PORT", "8080.5"},
			{"zero slice size", "ENRICH_SLICE_SIZE", "0"},
			{"negative attempts", "REFERENCE_MAX_ATTEMPTS", "-1"},
			{"bad ttl", "REFERENCE_TTL", "thirty minutes"},
			{"bad timeout", "FETCH_TIMEOUT", "10"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(tc.key, tc.value)

				cfg, err := Load()

				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tc.key)
			})
		}
	})

	t.Run("reports every invalid value", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "x")
		t.Setenv("REFERENCE_TTL", "y")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
		assert.Contains(t, err.Error(), "REFERENCE_TTL")
	})
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "SERVICE_NAME", "VERSION",
		"REFERENCE_URL", "REFERENCE_TTL", "REFERENCE_MAX_ATTEMPTS", "FETCH_TIMEOUT",
		"REFRESH_INTERVAL", "PALETTE_CACHE_SIZE", "ENRICH_SLICE_SIZE",
		"ALIASES_PATH", "ALIASES_SCHEMA_PATH", "CONTINENTS_PATH", "MIGRATIONS_PATH",
		"DATABASE_URL", "ADMIN_API_KEY", "TRUSTED_PROXIES", "ENV_SCHEMA_VERSION",
	}

	for _, key := range envVars {
		t.Setenv(key, "")
	}
}
