package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/GlobePalette_Go/internal/countries"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// Reference data
	ReferenceURL         string
	ReferenceTTL         time.Duration
	ReferenceMaxAttempts int
	FetchTimeout         time.Duration
	RefreshInterval      time.Duration // 0 disables background refresh

	// Palette and enrichment
	PaletteCacheSize int
	EnrichSliceSize  int

	// Config files
	AliasesPath       string
	AliasesSchemaPath string
	ContinentsPath    string
	MigrationsPath    string

	// DatabaseURL enables snapshot persistence when set
	DatabaseURL string

	// AdminAPIKey guards /api/v1/admin; empty leaves admin routes unmounted
	AdminAPIKey    string
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:         getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:       getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:       getEnv("SERVICE_NAME", DefaultServiceName),
		Version:           getEnv("VERSION", DefaultVersion),
		ReferenceURL:      getEnv("REFERENCE_URL", countries.DefaultReferenceURL),
		AliasesPath:       getEnv("ALIASES_PATH", ConfigPathAliases),
		AliasesSchemaPath: getEnv("ALIASES_SCHEMA_PATH", ConfigPathAliasesSchema),
		ContinentsPath:    getEnv("CONTINENTS_PATH", ConfigPathContinents),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", ConfigPathMigrations),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		AdminAPIKey:       getEnv("ADMIN_API_KEY", ""),
		TrustedProxies:    splitList(getEnv("TRUSTED_PROXIES", "")),
	}

	var errs []error
	ints := []struct {
		key      string
		def      int
		dst      *int
		positive bool
	}{
		{"PORT", DefaultPort, &cfg.Port, true},
		{"REFERENCE_MAX_ATTEMPTS", DefaultMaxAttempts, &cfg.ReferenceMaxAttempts, true},
		{"PALETTE_CACHE_SIZE", DefaultPaletteCacheSize, &cfg.PaletteCacheSize, true},
		{"ENRICH_SLICE_SIZE", DefaultSliceSize, &cfg.EnrichSliceSize, true},
	}
	for _, v := range ints {
		n, err := getEnvAsInt(v.key, v.def)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v.positive && n <= 0 {
			errs = append(errs, fmt.Errorf(ErrMsgMustBePositive, v.key, n))
			continue
		}
		*v.dst = n
	}

	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"REFERENCE_TTL", DefaultReferenceTTL, &cfg.ReferenceTTL},
		{"FETCH_TIMEOUT", DefaultFetchTimeout, &cfg.FetchTimeout},
		{"REFRESH_INTERVAL", DefaultRefreshInterval, &cfg.RefreshInterval},
	}
	for _, v := range durations {
		d, err := getEnvAsDuration(v.key, v.def)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*v.dst = d
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// PersistenceEnabled reports whether a database is configured.
func (c *Config) PersistenceEnabled() bool {
	return c.DatabaseURL != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// splitList parses a comma separated value, dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidInt, key, raw, err)
	}
	return n, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidDuration, key, raw, err)
	}
	return d, nil
}
