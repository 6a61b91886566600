package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GlobePalette_Go/internal/colormath"
	"github.com/osse101/GlobePalette_Go/internal/flag"
	"github.com/osse101/GlobePalette_Go/internal/snapshot"
)

type snapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates a PostgreSQL snapshot repository
func NewSnapshotRepository(db *pgxpool.Pool) snapshot.Repository {
	return &snapshotRepository{db: db}
}

// SaveReference replaces the single stored reference set
func (r *snapshotRepository) SaveReference(ctx context.Context, ref snapshot.Reference) error {
	records, err := json.Marshal(ref.Records)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMarshalRecords, err)
	}

	query := `
		INSERT INTO reference_snapshots (snapshot_id, records, record_count, fetched_at, saved_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (snapshot_id) DO UPDATE
		SET records = EXCLUDED.records,
			record_count = EXCLUDED.record_count,
			fetched_at = EXCLUDED.fetched_at,
			saved_at = EXCLUDED.saved_at
		WHERE reference_snapshots.fetched_at <= EXCLUDED.fetched_at
	`
	if _, err := r.db.Exec(ctx, query, records, len(ref.Records), ref.FetchedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpsertSnapshot, err)
	}
	return nil
}

// LoadReference returns nil when no snapshot was stored
func (r *snapshotRepository) LoadReference(ctx context.Context) (*snapshot.Reference, error) {
	var (
		raw []byte
		ref snapshot.Reference
	)
	err := r.db.QueryRow(ctx, `SELECT records, fetched_at FROM reference_snapshots WHERE snapshot_id = 1`).
		Scan(&raw, &ref.FetchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQuerySnapshot, err)
	}
	if err := json.Unmarshal(raw, &ref.Records); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUnmarshalRecords, err)
	}
	return &ref, nil
}

// SaveFlagResults upserts all results in one transaction
func (r *snapshotRepository) SaveFlagResults(ctx context.Context, results []flag.CachedResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpsertFlags, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO flag_results (image_ref, primary_color, secondary_color, no_colors, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (image_ref) DO UPDATE
		SET primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			no_colors = EXCLUDED.no_colors,
			updated_at = EXCLUDED.updated_at
	`
	batch := &pgx.Batch{}
	for _, res := range results {
		batch.Queue(query, res.Ref, res.Primary.Hex(), hexPtr(res.Secondary), res.NoColors)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpsertFlags, err)
	}

	return tx.Commit(ctx)
}

// LoadFlagResults returns the most recently updated results, oldest first,
// so restoring them in order leaves the newest as most recently used.
func (r *snapshotRepository) LoadFlagResults(ctx context.Context, limit int) ([]flag.CachedResult, error) {
	query := `
		SELECT image_ref, primary_color, secondary_color, no_colors
		FROM (
			SELECT image_ref, primary_color, secondary_color, no_colors, updated_at
			FROM flag_results
			ORDER BY updated_at DESC, image_ref
			LIMIT $1
		) recent
		ORDER BY updated_at ASC, image_ref
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryFlags, err)
	}
	defer rows.Close()

	var results []flag.CachedResult
	for rows.Next() {
		var (
			res       flag.CachedResult
			primary   string
			secondary *string
		)
		if err := rows.Scan(&res.Ref, &primary, &secondary, &res.NoColors); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgQueryFlags, err)
		}
		if res.Primary, err = colormath.ParseHex(primary); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInvalidColumn, err)
		}
		if res.Secondary, err = colorPtr(secondary); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInvalidColumn, err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryFlags, err)
	}
	return results, nil
}
