package snapshot

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GlobePalette_Go/internal/flag"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SaveReference(ctx context.Context, ref Reference) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockRepository) LoadReference(ctx context.Context) (*Reference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reference), args.Error(1)
}

func (m *MockRepository) SaveFlagResults(ctx context.Context, results []flag.CachedResult) error {
	args := m.Called(ctx, results)
	return args.Error(0)
}

func (m *MockRepository) LoadFlagResults(ctx context.Context, limit int) ([]flag.CachedResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]flag.CachedResult), args.Error(1)
}
