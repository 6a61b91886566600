package globe

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/GlobePalette_Go/internal/countries"
	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/enrichment"
	"github.com/osse101/GlobePalette_Go/internal/flag"
	"github.com/osse101/GlobePalette_Go/internal/logger"
	"github.com/osse101/GlobePalette_Go/internal/naming"
	"github.com/osse101/GlobePalette_Go/internal/palette"
)

// ReferenceCache is the part of countries.Cache the service uses.
type ReferenceCache interface {
	Usable(ctx context.Context) (*countries.Snapshot, bool, error)
	LookupCode(ctx context.Context, code string) (domain.Country, bool, error)
	Invalidate(ctx context.Context, source string)
	Stats() countries.Stats
	Matcher() *naming.Matcher
}

// FlagStats is implemented by flag.Extractor.
type FlagStats interface {
	Stats() flag.Stats
}

// Resolution is a successful name lookup.
type Resolution struct {
	Country  domain.Country `json:"country"`
	Strategy string         `json:"strategy"`
	// Stale is set when the reference set could not be refreshed and the
	// last good snapshot answered instead.
	Stale bool `json:"stale"`
}

// CacheStats combines reference and palette cache counters.
type CacheStats struct {
	Reference countries.Stats `json:"reference"`
	Flags     flag.Stats      `json:"flags"`
}

// Service is the consumer-facing API.
type Service interface {
	// ResolveCountryByName returns (zero, false, nil) on a miss. The error is
	// non-nil only when no reference set could be obtained at all.
	ResolveCountryByName(ctx context.Context, name string) (Resolution, bool, error)
	LookupCode(ctx context.Context, code string) (domain.Country, bool, error)
	GetPalette(ctx context.Context, country domain.Country, opts palette.Options) palette.Display
	// GetPaletteByCode wraps domain.ErrCountryNotFound on a miss.
	GetPaletteByCode(ctx context.Context, code string, opts palette.Options) (domain.Country, palette.Display, error)
	EnrichFeatureColors(ctx context.Context, features []*domain.Feature, onProgress enrichment.Publisher) (enrichment.Report, error)
	InvalidateReference(ctx context.Context, source string)
	CacheStats() CacheStats
}

type service struct {
	cache     ReferenceCache
	builder   enrichment.PaletteBuilder
	flags     FlagStats
	sliceSize int
	publisher enrichment.Publisher
}

// Config wires a Service.
type Config struct {
	Cache     ReferenceCache
	Builder   enrichment.PaletteBuilder
	Flags     FlagStats
	SliceSize int
	// Publisher receives progress of every run in addition to the
	// per-call listener.
	Publisher enrichment.Publisher
}

// NewService creates a new globe service
func NewService(cfg Config) Service {
	return &service{
		cache:     cfg.Cache,
		builder:   cfg.Builder,
		flags:     cfg.Flags,
		sliceSize: cfg.SliceSize,
		publisher: cfg.Publisher,
	}
}

func (s *service) ResolveCountryByName(ctx context.Context, name string) (Resolution, bool, error) {
	log := logger.FromContext(ctx)
	if strings.TrimSpace(name) == "" {
		return Resolution{}, false, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyName)
	}

	snap, stale, err := s.cache.Usable(ctx)
	if err != nil {
		return Resolution{}, false, err
	}

	// The table was built by the cache's matcher, so resolve with the same one.
	rec, strategy := s.cache.Matcher().ResolveTable(name, snap.Table)
	if strategy == naming.StrategyNone {
		log.Debug(LogMsgResolveMiss, "name", name)
		return Resolution{}, false, nil
	}

	if stale {
		log.Info(LogMsgResolvedFromStale, "name", name, "country", rec.Name)
	} else {
		log.Debug(LogMsgResolved, "name", name, "country", rec.Name, "strategy", strategy.String())
	}
	return Resolution{Country: rec, Strategy: strategy.String(), Stale: stale}, true, nil
}

func (s *service) LookupCode(ctx context.Context, code string) (domain.Country, bool, error) {
	if strings.TrimSpace(code) == "" {
		return domain.Country{}, false, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyCode)
	}
	return s.cache.LookupCode(ctx, code)
}

func (s *service) GetPalette(ctx context.Context, country domain.Country, opts palette.Options) palette.Display {
	return s.builder.Build(ctx, country, opts)
}

func (s *service) GetPaletteByCode(ctx context.Context, code string, opts palette.Options) (domain.Country, palette.Display, error) {
	rec, ok, err := s.LookupCode(ctx, code)
	if err != nil {
		return domain.Country{}, palette.Display{}, err
	}
	if !ok {
		return domain.Country{}, palette.Display{}, fmt.Errorf("%w: %s", domain.ErrCountryNotFound, code)
	}
	return rec, s.builder.Build(ctx, rec, opts), nil
}

func (s *service) EnrichFeatureColors(ctx context.Context, features []*domain.Feature, onProgress enrichment.Publisher) (enrichment.Report, error) {
	logger.FromContext(ctx).Info(LogMsgEnrichRequested, "features", len(features))
	sched := enrichment.NewScheduler(s.builder, enrichment.Options{
		SliceSize: s.sliceSize,
		Publisher: enrichment.Publishers(s.publisher, onProgress),
	})
	return sched.Run(ctx, features, s.runSource(ctx))
}

// runSource pins one reference snapshot for a whole run so a dead upstream
// is retried once per run, not once per feature. It returns nil when no
// snapshot is available, which degrades every feature to its BaseColor.
func (s *service) runSource(ctx context.Context) enrichment.Source {
	snap, _, err := s.cache.Usable(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgEnrichWithoutReference, "error", err)
		return nil
	}
	return snapshotSource{snap: snap}
}

// snapshotSource answers code lookups from a single snapshot.
type snapshotSource struct {
	snap *countries.Snapshot
}

func (p snapshotSource) LookupCode(_ context.Context, code string) (domain.Country, bool, error) {
	rec, ok := p.snap.LookupCode(code)
	return rec, ok, nil
}

func (s *service) InvalidateReference(ctx context.Context, source string) {
	s.cache.Invalidate(ctx, source)
}

func (s *service) CacheStats() CacheStats {
	st := CacheStats{Reference: s.cache.Stats()}
	if s.flags != nil {
		st.Flags = s.flags.Stats()
	}
	return st
}
