package config

import "time"

const (
	// Configuration file paths
	ConfigPathAliases       = "configs/naming/aliases.json"
	ConfigPathAliasesSchema = "configs/schemas/aliases.schema.json"
	ConfigPathContinents    = "configs/palette/continents.yaml"
	ConfigPathMigrations    = "migrations"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "globe-palette"
	DefaultVersion          = "dev"
	DefaultReferenceTTL     = 30 * time.Minute
	DefaultMaxAttempts      = 3
	DefaultFetchTimeout     = 10 * time.Second
	DefaultPaletteCacheSize = 512
	DefaultSliceSize        = 6
	DefaultRefreshInterval  = time.Duration(0)
)

// Error messages
const (
	ErrMsgInvalidInt      = "invalid %s value %q: %w"
	ErrMsgInvalidDuration = "invalid %s value %q: %w"
	ErrMsgMustBePositive  = "%s must be positive, got %d"
)
