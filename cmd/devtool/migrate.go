package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/osse101/GlobePalette_Go/internal/config"
	"github.com/osse101/GlobePalette_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, create <name>)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return errors.New("subcommand required: up, create")
	}
	dir := getEnv("MIGRATIONS_PATH", config.ConfigPathMigrations)

	switch args[0] {
	case "create":
		if len(args) < 2 {
			return errors.New("migration name required for create")
		}
		// Sequential numbering keeps file names in the 00001_name.sql form.
		goose.SetSequential(true)
		return goose.Create(nil, dir, args[1], "sql")

	case "up":
		dbURL := getEnv("DATABASE_URL", "")
		if dbURL == "" {
			return errors.New("DATABASE_URL is not set")
		}
		ctx := context.Background()
		pool, err := database.NewPool(ctx, dbURL, database.DefaultMinConnections, database.DefaultMaxConnIdle, database.DefaultMaxConnLife)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool, dir); err != nil {
			return err
		}
		PrintSuccess("Migrations applied from %s", dir)
		return nil

	default:
		return fmt.Errorf("unknown migrate subcommand %q", args[0])
	}
}
