package eventlog

import (
	"context"
	"encoding/json"

	"github.com/osse101/GlobePalette_Go/internal/event"
	"github.com/osse101/GlobePalette_Go/internal/logger"
)

// Service audits reference and enrichment activity
type Service interface {
	// Subscribe registers the event logger on the bus
	Subscribe(bus event.Bus)

	// Recent returns logged events newest first
	Recent(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(bus event.Bus) {
	for _, eventType := range AuditedTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
}

// handleEvent flattens the payload to a JSON object and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := toObject(evt.Payload)
	if err != nil {
		log.Debug(LogMsgPayloadNotObject, "type", evt.Type, "error", err)
		return nil
	}

	var runID *string
	if id, ok := payload[PayloadKeyRunID].(string); ok && id != "" {
		runID = &id
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), runID, payload, evt.Metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type)
	return nil
}

func (s *service) Recent(ctx context.Context, filter EventFilter) ([]Event, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultQueryLimit
	}
	if filter.Limit > MaxQueryLimit {
		filter.Limit = MaxQueryLimit
	}
	return s.repo.GetEvents(ctx, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}

// toObject converts a payload to a map; nil becomes an empty object.
func toObject(p interface{}) (map[string]interface{}, error) {
	if p == nil {
		return map[string]interface{}{}, nil
	}
	if m, ok := p.(map[string]interface{}); ok {
		return m, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
