package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/GlobePalette_Go/internal/database"
)

const (
	waitForDBRetries  = 30
	waitForDBInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for DATABASE_URL to accept connections (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	dbURL := getEnv("DATABASE_URL", "")
	if dbURL == "" {
		return errors.New("DATABASE_URL is not set")
	}

	var err error
	for i := 0; i < waitForDBRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), waitForDBInterval)
		pool, perr := database.NewPool(ctx, dbURL, database.DefaultMinConnections, database.DefaultMaxConnIdle, database.DefaultMaxConnLife)
		cancel()
		if perr == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}
		err = perr

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitForDBRetries, err)
		time.Sleep(waitForDBInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", waitForDBRetries, err)
}
