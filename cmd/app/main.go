package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/osse101/GlobePalette_Go/docs"
	"github.com/osse101/GlobePalette_Go/internal/bootstrap"
	"github.com/osse101/GlobePalette_Go/internal/config"
	"github.com/osse101/GlobePalette_Go/internal/database"
	"github.com/osse101/GlobePalette_Go/internal/eventlog"
	"github.com/osse101/GlobePalette_Go/internal/handler"
	"github.com/osse101/GlobePalette_Go/internal/scheduler"
	"github.com/osse101/GlobePalette_Go/internal/server"
	"github.com/osse101/GlobePalette_Go/internal/snapshot"
	"github.com/osse101/GlobePalette_Go/internal/sse"
	"github.com/osse101/GlobePalette_Go/internal/worker"
)

const (
	shutdownTimeout  = 15 * time.Second
	warmStartTimeout = 30 * time.Second
)

// @title GlobePalette API
// @version 1.0
// @description Country name resolution and flag-derived map palettes.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx := context.Background()
	bus := bootstrap.InitializeEventSystem()

	g, err := bootstrap.InitializeGlobe(cfg, bootstrap.GlobeOptions{
		Bus:        bus,
		Registerer: prometheus.DefaultRegisterer,
	})
	if err != nil {
		slog.Error("Failed to initialize globe service", "error", err)
		os.Exit(1)
	}

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize persistence", "error", err)
		os.Exit(1)
	}

	pool := worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize)
	pool.Start()

	hub := sse.NewHub()
	hub.Start()

	readiness := map[string]handler.HealthChecker{
		"reference": handler.HealthCheckerFunc(func(ctx context.Context) error {
			_, _, err := g.Cache.Usable(ctx)
			return err
		}),
	}

	var (
		snapshotSvc snapshot.Service
		eventLogSvc eventlog.Service
		db          database.Pool
	)
	if repos != nil {
		db = repos.Pool
		readiness["database"] = handler.HealthCheckerFunc(repos.Pool.Ping)

		eventLogSvc = eventlog.NewService(repos.EventLog)
		snapshotSvc = snapshot.NewService(repos.Snapshot, g.Cache, g.Extractor.Cache(), cfg.PaletteCacheSize)

		wctx, cancel := context.WithTimeout(ctx, warmStartTimeout)
		report, err := snapshotSvc.WarmStart(wctx)
		cancel()
		if err != nil {
			slog.Warn(bootstrap.LogMsgWarmStartFailed, "error", err)
		} else {
			slog.Info(bootstrap.LogMsgWarmStartDone,
				"records", report.Records,
				"fresh", report.Fresh,
				"flag_results", report.FlagResults)
		}
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        bus,
		Hub:             hub,
		EventLogService: eventLogSvc,
		SnapshotService: snapshotSvc,
		Pool:            pool,
	}); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	sched := scheduler.New(pool)
	bootstrap.ScheduleJobs(sched, bootstrap.BackgroundJobs{
		Refresher:       g.Cache,
		RefreshInterval: cfg.RefreshInterval,
		RefreshTimeout:  worker.DefaultRefreshTimeout,
		EventLog:        eventLogSvc,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AdminAPIKey:    cfg.AdminAPIKey,
		TrustedProxies: cfg.TrustedProxies,
		Service:        g.Service,
		Hub:            hub,
		EventLog:       eventLogSvc,
		Readiness:      readiness,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
		Snapshot:  snapshotSvc,
		Hub:       hub,
		DB:        db,
	})
}
