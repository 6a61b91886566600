package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GlobePalette_Go/internal/config"
	"github.com/osse101/GlobePalette_Go/internal/database"
	"github.com/osse101/GlobePalette_Go/internal/database/postgres"
	"github.com/osse101/GlobePalette_Go/internal/eventlog"
	"github.com/osse101/GlobePalette_Go/internal/snapshot"
)

// Repositories holds the Postgres-backed repositories. It is nil when no
// database is configured.
type Repositories struct {
	Pool     *pgxpool.Pool
	Snapshot snapshot.Repository
	EventLog eventlog.Repository
}

// InitializeRepositories connects to DATABASE_URL, applies migrations and
// builds the repositories. It returns (nil, nil) when persistence is disabled.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if !cfg.PersistenceEnabled() {
		slog.Info(LogMsgPersistenceDisabled)
		return nil, nil
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL,
		database.DefaultMaxConnections, database.DefaultMaxConnIdle, database.DefaultMaxConnLife)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
	}

	if err := database.Migrate(ctx, pool, cfg.MigrationsPath); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrateDatabase, err)
	}

	slog.Info(LogMsgPersistenceEnabled, "migrations", cfg.MigrationsPath)
	return &Repositories{
		Pool:     pool,
		Snapshot: postgres.NewSnapshotRepository(pool),
		EventLog: postgres.NewEventLogRepository(pool),
	}, nil
}
