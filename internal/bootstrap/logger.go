package bootstrap

import (
	"log/slog"

	"github.com/osse101/GlobePalette_Go/internal/config"
	"github.com/osse101/GlobePalette_Go/internal/logger"
)

// SetupLogger installs the process logger described by cfg as the slog
// default and logs the startup banner. Source locations are added in dev.
func SetupLogger(cfg *config.Config) *slog.Logger {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"reference_url", cfg.ReferenceURL,
		"reference_ttl", cfg.ReferenceTTL,
		"refresh_interval", cfg.RefreshInterval,
		"persistence", cfg.PersistenceEnabled())

	return l
}
