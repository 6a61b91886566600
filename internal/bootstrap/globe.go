package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/GlobePalette_Go/internal/config"
	"github.com/osse101/GlobePalette_Go/internal/countries"
	"github.com/osse101/GlobePalette_Go/internal/enrichment"
	"github.com/osse101/GlobePalette_Go/internal/event"
	"github.com/osse101/GlobePalette_Go/internal/flag"
	"github.com/osse101/GlobePalette_Go/internal/globe"
	"github.com/osse101/GlobePalette_Go/internal/metrics"
	"github.com/osse101/GlobePalette_Go/internal/naming"
	"github.com/osse101/GlobePalette_Go/internal/palette"
	"github.com/osse101/GlobePalette_Go/internal/validation"
)

// Globe holds the reference and palette components behind the globe service.
type Globe struct {
	Cache     *countries.Cache
	Extractor *flag.Extractor
	Builder   *palette.Builder
	Service   globe.Service
}

// GlobeOptions carries what InitializeGlobe cannot read from config.
type GlobeOptions struct {
	Bus event.Bus
	// Fetcher replaces the HTTP reference fetcher when set.
	Fetcher countries.Fetcher
	// Loader replaces the default flag image loader when set.
	Loader flag.Loader
	// Registerer receives the flag cache collectors; nil skips registration.
	Registerer prometheus.Registerer
}

// InitializeGlobe loads the alias and continent files and builds the
// countries cache, flag extractor, palette builder and globe service.
func InitializeGlobe(cfg *config.Config, opts GlobeOptions) (*Globe, error) {
	overrides, err := naming.LoadOverrides(cfg.AliasesPath, cfg.AliasesSchemaPath, validation.NewSchemaValidator())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadAliases, err)
	}
	slog.Info(LogMsgAliasesLoaded, "path", cfg.AliasesPath, "extra", len(overrides))

	table, err := palette.LoadTable(cfg.ContinentsPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadContinents, err)
	}
	slog.Info(LogMsgContinentsLoaded, "path", cfg.ContinentsPath, "version", table.Version)

	client := &http.Client{Timeout: cfg.FetchTimeout}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = countries.NewHTTPFetcher(cfg.ReferenceURL, client)
	}
	cache := countries.NewCache(fetcher, countries.Options{
		TTL:         cfg.ReferenceTTL,
		MaxAttempts: cfg.ReferenceMaxAttempts,
		Matcher:     naming.NewMatcher(overrides),
		Bus:         opts.Bus,
	})

	loader := opts.Loader
	if loader == nil {
		loader = flag.NewDefaultLoader(client, "")
	}
	extractor := flag.NewExtractor(loader, flag.NewCache(cfg.PaletteCacheSize))
	if opts.Registerer != nil {
		if err := metrics.RegisterFlagStats(opts.Registerer, extractor); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgRegisterFlags, err)
		}
	}

	builder := palette.NewBuilder(extractor, table)

	var publisher enrichment.Publisher
	if opts.Bus != nil {
		publisher = enrichment.NewBusPublisher(opts.Bus)
	}

	svc := globe.NewService(globe.Config{
		Cache:     cache,
		Builder:   builder,
		Flags:     extractor,
		SliceSize: cfg.EnrichSliceSize,
		Publisher: publisher,
	})
	slog.Info(LogMsgGlobeInitialized,
		"reference_ttl", cfg.ReferenceTTL,
		"palette_cache_size", cfg.PaletteCacheSize,
		"slice_size", cfg.EnrichSliceSize)

	return &Globe{Cache: cache, Extractor: extractor, Builder: builder, Service: svc}, nil
}
