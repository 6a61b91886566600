package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the .env schema version when one is declared. Every
// variable has a default, so an absent version is accepted.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like settings that are odd but usable)
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if cfg.Environment == "production" && cfg.DatabaseURL == "" {
		warnings = append(warnings, "DATABASE_URL is not set - reference snapshots will not survive restarts")
	}

	if cfg.RefreshInterval > 0 && cfg.RefreshInterval < cfg.ReferenceTTL {
		warnings = append(warnings, fmt.Sprintf("REFRESH_INTERVAL (%s) is shorter than REFERENCE_TTL (%s) - the reference set will be refetched before it goes stale", cfg.RefreshInterval, cfg.ReferenceTTL))
	}

	if cfg.ReferenceMaxAttempts > 10 {
		warnings = append(warnings, fmt.Sprintf("REFERENCE_MAX_ATTEMPTS is %d - a failing upstream will block callers for a long time", cfg.ReferenceMaxAttempts))
	}

	if _, err := os.Stat(cfg.AliasesPath); err != nil && os.IsNotExist(err) {
		warnings = append(warnings, fmt.Sprintf("aliases file %s not found - only built-in overrides will be used", cfg.AliasesPath))
	}

	return warnings, nil
}
