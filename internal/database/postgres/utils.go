package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/GlobePalette_Go/internal/colormath"
	"github.com/osse101/GlobePalette_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}

// hexPtr converts an optional color to a nullable column value.
func hexPtr(c *colormath.RGB) *string {
	if c == nil {
		return nil
	}
	h := c.Hex()
	return &h
}

// colorPtr parses a nullable color column.
func colorPtr(s *string) (*colormath.RGB, error) {
	if s == nil {
		return nil, nil
	}
	c, err := colormath.ParseHex(*s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
