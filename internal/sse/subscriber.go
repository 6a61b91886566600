package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/GlobePalette_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.EnrichmentSliceCompleted, s.handleSlice)
	s.bus.Subscribe(event.EnrichmentCompleted, s.handleCompleted)
	s.bus.Subscribe(event.ReferenceRefreshed, s.handleRefreshed)
	s.bus.Subscribe(event.ReferenceFetchFailed, s.handleFetchFailed)

	slog.Info(LogMsgSubscriberRegistred,
		"types", []string{
			string(event.EnrichmentSliceCompleted),
			string(event.EnrichmentCompleted),
			string(event.ReferenceRefreshed),
			string(event.ReferenceFetchFailed),
		})
}

func (s *Subscriber) handleSlice(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.EnrichmentProgressPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeEnrichmentProgress, p.RunID, ProgressPayload{
		RunID:  p.RunID,
		Slice:  p.Slice,
		Slices: p.Slices,
		Done:   p.Done,
		Total:  p.Total,
		Colors: p.Colors,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeEnrichmentProgress,
		"run_id", p.RunID,
		"slice", p.Slice)
	return nil
}

func (s *Subscriber) handleCompleted(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.EnrichmentCompletedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeEnrichmentCompleted, p.RunID, CompletedPayload(p))
	return nil
}

func (s *Subscriber) handleRefreshed(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.ReferenceRefreshedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeReferenceRefreshed, "", ReferencePayload{
		Records:  p.Records,
		Attempts: p.Attempts,
	})
	return nil
}

func (s *Subscriber) handleFetchFailed(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.ReferenceFetchFailedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeReferenceUnavailable, "", ReferencePayload{
		Attempts: p.Attempts,
		HasStale: p.HasStale,
		Error:    p.Error,
	})
	return nil
}
