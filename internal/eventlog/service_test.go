package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GlobePalette_Go/internal/event"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestService_Subscribe(t *testing.T) {
	mockBus := new(MockEventBus)
	for _, et := range AuditedTypes {
		mockBus.On("Subscribe", et, mock.Anything).Return()
	}

	NewService(new(MockRepository)).Subscribe(mockBus)

	mockBus.AssertExpectations(t)
	mockBus.AssertNotCalled(t, "Subscribe", event.EnrichmentSliceCompleted, mock.Anything)
}

func TestService_HandleEvent_StructPayload(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	ctx := context.Background()

	evt := event.NewEnrichmentCompletedEvent(event.EnrichmentCompletedPayloadV1{
		RunID: "run-7", Total: 12, Done: 12, Fallbacks: 2, DurationMs: 40,
	})

	runID := "run-7"
	mockRepo.On("LogEvent", ctx, string(event.EnrichmentCompleted), &runID,
		mock.MatchedBy(func(p map[string]interface{}) bool {
			return p["total"] == float64(12) && p["fallbacks"] == float64(2)
		}), evt.Metadata).Return(nil)

	require.NoError(t, svc.handleEvent(ctx, evt))
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_NilPayload(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	ctx := context.Background()

	evt := event.NewReferenceInvalidatedEvent("admin")
	mockRepo.On("LogEvent", ctx, string(event.ReferenceInvalidated), (*string)(nil),
		map[string]interface{}{}, map[string]interface{}{"source": "admin"}).Return(nil)

	require.NoError(t, svc.handleEvent(ctx, evt))
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)

	mockRepo.On("LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	err := svc.handleEvent(context.Background(), event.NewReferenceRefreshedEvent(250, 1, time.Now()))
	assert.Error(t, err)
}

func TestService_HandleEvent_ThroughBus(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("LogEvent", mock.Anything, string(event.ReferenceRefreshed), (*string)(nil), mock.Anything, mock.Anything).Return(nil)

	bus := event.NewMemoryBus()
	NewService(mockRepo).Subscribe(bus)

	require.NoError(t, bus.Publish(context.Background(), event.NewReferenceRefreshedEvent(250, 2, time.Now())))
	require.NoError(t, bus.Publish(context.Background(), event.NewEnrichmentSliceEvent(event.EnrichmentProgressPayloadV1{RunID: "r"})))

	mockRepo.AssertNumberOfCalls(t, "LogEvent", 1)
}

func TestService_RecentClampsLimit(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetEvents", ctx, EventFilter{Limit: DefaultQueryLimit}).Return([]Event{{ID: 1}}, nil).Once()
	mockRepo.On("GetEvents", ctx, EventFilter{Limit: MaxQueryLimit}).Return([]Event{}, nil).Once()

	events, err := svc.Recent(ctx, EventFilter{})
	require.NoError(t, err)
	assert.Len(t, events, 1)

	_, err = svc.Recent(ctx, EventFilter{Limit: 10000})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_CleanupOldEvents(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CleanupOldEvents", ctx, 10).Return(int64(5), nil)
	mockRepo.On("CleanupOldEvents", ctx, DefaultRetentionDays).Return(int64(0), nil)

	count, err := service.CleanupOldEvents(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)

	_, err = service.CleanupOldEvents(ctx, 0)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
