package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GlobePalette_Go/internal/database"
	"github.com/osse101/GlobePalette_Go/internal/scheduler"
	"github.com/osse101/GlobePalette_Go/internal/server"
	"github.com/osse101/GlobePalette_Go/internal/snapshot"
	"github.com/osse101/GlobePalette_Go/internal/sse"
	"github.com/osse101/GlobePalette_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown. Any
// field may be nil.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Snapshot  snapshot.Service
	Hub       *sse.Hub
	DB        database.Pool
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler, then worker pool (no new ticks, in-flight jobs cancelled)
// 3. Final snapshot persist
// 4. SSE hub and database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		c.Scheduler.Stop()
	}

	if c.Pool != nil {
		slog.Info(LogMsgStoppingWorkers)
		c.Pool.Stop()
	}

	if c.Snapshot != nil {
		slog.Info(LogMsgFinalPersist)
		if err := c.Snapshot.Persist(ctx); err != nil {
			slog.Error(LogMsgFinalPersistFailed, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		c.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
