package snapshot

import (
	"context"
	"time"

	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/flag"
)

// Reference is a persisted reference set
type Reference struct {
	Records   []domain.Country
	FetchedAt time.Time
}

// Repository stores the last reference set and cached flag results
type Repository interface {
	// SaveReference replaces the stored reference set
	SaveReference(ctx context.Context, ref Reference) error

	// LoadReference returns nil when nothing was stored yet
	LoadReference(ctx context.Context) (*Reference, error)

	// SaveFlagResults upserts results by image ref
	SaveFlagResults(ctx context.Context, results []flag.CachedResult) error

	// LoadFlagResults returns at most limit results, least recently updated first
	LoadFlagResults(ctx context.Context, limit int) ([]flag.CachedResult, error)
}
