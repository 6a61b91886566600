package globe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GlobePalette_Go/internal/colormath"
	"github.com/osse101/GlobePalette_Go/internal/countries"
	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/enrichment"
	"github.com/osse101/GlobePalette_Go/internal/flag"
	"github.com/osse101/GlobePalette_Go/internal/palette"
)

var testRecords = []domain.Country{
	{Name: "United States", OfficialName: "United States of America", CCA2: "US", CCA3: "USA", Continent: "North America", FlagURL: "us.png"},
	{Name: "Czechia", OfficialName: "Czech Republic", CCA2: "CZ", CCA3: "CZE", Continent: "Europe", FlagURL: "cz.png"},
	{Name: "Côte d'Ivoire", OfficialName: "Republic of Côte d'Ivoire", AltSpellings: []string{"Ivory Coast"}, CCA2: "CI", CCA3: "CIV", Continent: "Africa", FlagURL: "ci.png"},
}

var flagRed = colormath.MustHex("#D02030")

type fixedExtractor struct{}

func (fixedExtractor) Extract(ctx context.Context, ref string, fallback colormath.RGB) flag.Result {
	if ref == "" {
		return flag.Result{Primary: fallback, Fallback: true}
	}
	return flag.Result{Primary: flagRed}
}

func (fixedExtractor) Stats() flag.Stats {
	return flag.Stats{Extractions: 3}
}

func newTestService(t *testing.T, f countries.Fetcher) (Service, *countries.Cache) {
	t.Helper()
	cache := countries.NewCache(f, countries.Options{
		Sleep: func(ctx context.Context, d time.Duration) error { return nil },
	})
	svc := NewService(Config{
		Cache:   cache,
		Builder: palette.NewBuilder(fixedExtractor{}, nil),
		Flags:   fixedExtractor{},
	})
	return svc, cache
}

func TestResolveCountryByName(t *testing.T) {
	svc, _ := newTestService(t, countries.StaticFetcher{Records: testRecords})
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		want     string
		strategy string
	}{
		{"override", "USA", "United States", "override"},
		{"exact", "czechia", "Czechia", "exact"},
		{"normalized", "cote divoire", "Côte d'Ivoire", "normalized"},
		{"alt spelling", "ivory coast", "Côte d'Ivoire", "alt_spelling"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok, err := svc.ResolveCountryByName(ctx, tt.query)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, res.Country.Name)
			assert.Equal(t, tt.strategy, res.Strategy)
			assert.False(t, res.Stale)
		})
	}

	_, ok, err := svc.ResolveCountryByName(ctx, "Atlantis")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = svc.ResolveCountryByName(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolveCountryByName_Unavailable(t *testing.T) {
	f := &countries.MockFetcher{}
	f.On("Fetch", mock.Anything).Return(nil, errors.New("dns failure"))
	svc, _ := newTestService(t, f)

	_, ok, err := svc.ResolveCountryByName(context.Background(), "USA")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestResolveCountryByName_StaleFallback(t *testing.T) {
	f := &countries.MockFetcher{}
	f.On("Fetch", mock.Anything).Return(nil, errors.New("dns failure"))
	svc, cache := newTestService(t, f)
	cache.Load(context.Background(), testRecords, time.Now().Add(-2*time.Hour))

	res, ok, err := svc.ResolveCountryByName(context.Background(), "Czech Republic")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Czechia", res.Country.Name)
	assert.True(t, res.Stale)
}

func TestGetPaletteByCode(t *testing.T) {
	svc, _ := newTestService(t, countries.StaticFetcher{Records: testRecords})
	ctx := context.Background()

	rec, display, err := svc.GetPaletteByCode(ctx, "cze", palette.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Czechia", rec.Name)
	assert.Equal(t, flagRed, display.Accent)
	assert.Equal(t, palette.DefaultTable().Base(palette.Europe), display.Base)
	assert.True(t, display.FromFlag)

	_, _, err = svc.GetPaletteByCode(ctx, "ZZ", palette.Options{})
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)

	_, _, err = svc.GetPaletteByCode(ctx, "", palette.Options{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetPalette_NoFlag(t *testing.T) {
	svc, _ := newTestService(t, countries.StaticFetcher{Records: testRecords})
	accent := colormath.MustHex("#123456")

	display := svc.GetPalette(context.Background(), domain.Country{Name: "Nowhere"}, palette.Options{FallbackAccent: &accent})
	assert.Equal(t, accent, display.Accent)
	assert.False(t, display.FromFlag)
}

func TestEnrichFeatureColors(t *testing.T) {
	svc, _ := newTestService(t, countries.StaticFetcher{Records: testRecords})
	base := colormath.MustHex("#999999")
	features := []*domain.Feature{
		domain.NewFeature("US", "", base),
		domain.NewFeature("XK", "", base),
		domain.NewFeature("CIV", "", base),
	}

	var slices int
	report, err := svc.EnrichFeatureColors(context.Background(), features, enrichment.PublisherFunc(
		func(ctx context.Context, p enrichment.Progress) error {
			slices++
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, 1, slices)
	assert.Equal(t, 1, report.Fallbacks)
	assert.Equal(t, flagRed, features[0].Color)
	assert.Equal(t, base, features[1].Color)
	assert.Equal(t, flagRed, features[2].Color)
}

func TestEnrichFeatureColors_Unavailable(t *testing.T) {
	f := &countries.MockFetcher{}
	f.On("Fetch", mock.Anything).Return(nil, countries.NewStatusError(503))
	svc, _ := newTestService(t, f)
	base := colormath.MustHex("#999999")
	features := []*domain.Feature{domain.NewFeature("US", "", base)}

	report, err := svc.EnrichFeatureColors(context.Background(), features, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Fallbacks)
	assert.Equal(t, base, features[0].Color)
}

func TestEnrichFeatureColors_UnavailableFetchesOncePerRun(t *testing.T) {
	f := &countries.MockFetcher{}
	f.On("Fetch", mock.Anything).Return(nil, countries.NewStatusError(503))
	cache := countries.NewCache(f, countries.Options{
		Sleep: func(ctx context.Context, d time.Duration) error { return nil },
	})
	svc := NewService(Config{
		Cache:     cache,
		Builder:   palette.NewBuilder(fixedExtractor{}, nil),
		SliceSize: 6,
	})

	base := colormath.MustHex("#999999")
	features := make([]*domain.Feature, 40)
	for i := range features {
		features[i] = domain.NewFeature("US", "", base)
	}

	var slices int
	report, err := svc.EnrichFeatureColors(context.Background(), features, enrichment.PublisherFunc(
		func(ctx context.Context, p enrichment.Progress) error {
			slices++
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, 7, slices)
	assert.Equal(t, 40, report.Fallbacks)
	for _, feat := range features {
		assert.Equal(t, base, feat.Color)
	}
	// one refresh cycle of three attempts for the whole run
	f.AssertNumberOfCalls(t, "Fetch", countries.DefaultMaxAttempts)
}

func TestEnrichFeatureColors_UsesStaleSnapshot(t *testing.T) {
	f := &countries.MockFetcher{}
	f.On("Fetch", mock.Anything).Return(nil, countries.NewStatusError(503))
	svc, cache := newTestService(t, f)
	cache.Load(context.Background(), testRecords, time.Now().Add(-2*time.Hour))

	base := colormath.MustHex("#999999")
	features := []*domain.Feature{
		domain.NewFeature("US", "", base),
		domain.NewFeature("CZ", "", base),
	}

	report, err := svc.EnrichFeatureColors(context.Background(), features, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Fallbacks)
	assert.Equal(t, flagRed, features[0].Color)
	assert.Equal(t, flagRed, features[1].Color)
	f.AssertNumberOfCalls(t, "Fetch", countries.DefaultMaxAttempts)
}

func TestCacheStatsAndInvalidate(t *testing.T) {
	svc, _ := newTestService(t, countries.StaticFetcher{Records: testRecords})
	ctx := context.Background()

	_, _, err := svc.LookupCode(ctx, "US")
	require.NoError(t, err)
	svc.InvalidateReference(ctx, "test")

	st := svc.CacheStats()
	assert.Equal(t, len(testRecords), st.Reference.Records)
	assert.False(t, st.Reference.Fresh)
	assert.Equal(t, int64(1), st.Reference.Invalidations)
	assert.Equal(t, int64(3), st.Flags.Extractions)
}
