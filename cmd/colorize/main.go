package main

import (
	"log/slog"
	"os"

	"github.com/osse101/GlobePalette_Go/internal/config"
	"github.com/osse101/GlobePalette_Go/internal/logger"
)

func main() {
	// Logs go to stderr so the colored JSON can be piped from stdout.
	logger.InitLoggerWithWriter(logger.NewConfig(
		config.DefaultLogLevel, config.DefaultLogFormat, "colorize", config.DefaultVersion, "cli", false,
	), os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("colorize failed", "error", err)
		os.Exit(1)
	}
}
