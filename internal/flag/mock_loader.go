package flag

import (
	"context"
	"image"

	"github.com/stretchr/testify/mock"
)

// MockLoader is a mock implementation of the Loader interface
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(image.Image), args.Error(1)
}
