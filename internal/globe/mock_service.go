package globe

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/enrichment"
	"github.com/osse101/GlobePalette_Go/internal/palette"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) ResolveCountryByName(ctx context.Context, name string) (Resolution, bool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(Resolution), args.Bool(1), args.Error(2)
}

func (m *MockService) LookupCode(ctx context.Context, code string) (domain.Country, bool, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Country), args.Bool(1), args.Error(2)
}

func (m *MockService) GetPalette(ctx context.Context, country domain.Country, opts palette.Options) palette.Display {
	args := m.Called(ctx, country, opts)
	return args.Get(0).(palette.Display)
}

func (m *MockService) GetPaletteByCode(ctx context.Context, code string, opts palette.Options) (domain.Country, palette.Display, error) {
	args := m.Called(ctx, code, opts)
	return args.Get(0).(domain.Country), args.Get(1).(palette.Display), args.Error(2)
}

func (m *MockService) EnrichFeatureColors(ctx context.Context, features []*domain.Feature, onProgress enrichment.Publisher) (enrichment.Report, error) {
	args := m.Called(ctx, features, onProgress)
	return args.Get(0).(enrichment.Report), args.Error(1)
}

func (m *MockService) InvalidateReference(ctx context.Context, source string) {
	m.Called(ctx, source)
}

func (m *MockService) CacheStats() CacheStats {
	args := m.Called()
	return args.Get(0).(CacheStats)
}
