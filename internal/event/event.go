package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/osse101/GlobePalette_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

const (
	ReferenceRefreshed       Type = "reference.refreshed"
	ReferenceFetchFailed     Type = "reference.fetch_failed"
	ReferenceInvalidated     Type = "reference.invalidated"
	EnrichmentSliceCompleted Type = "enrichment.slice_completed"
	EnrichmentCompleted      Type = "enrichment.completed"
)

// ReferenceRefreshedPayloadV1 is published after a successful reference fetch
type ReferenceRefreshedPayloadV1 struct {
	Records   int       `json:"records"`
	Attempts  int       `json:"attempts"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ReferenceFetchFailedPayloadV1 is published when every fetch attempt failed
type ReferenceFetchFailedPayloadV1 struct {
	Attempts  int    `json:"attempts"`
	Error     string `json:"error"`
	HasStale  bool   `json:"has_stale"`
	Timestamp int64  `json:"timestamp"`
}

// EnrichmentProgressPayloadV1 is published after every completed slice
type EnrichmentProgressPayloadV1 struct {
	RunID  string                `json:"run_id"`
	Slice  int                   `json:"slice"`
	Slices int                   `json:"slices"`
	Done   int                   `json:"done"`
	Total  int                   `json:"total"`
	Colors []domain.FeatureColor `json:"colors"`
}

// EnrichmentCompletedPayloadV1 is published once a run stops, finished or not
type EnrichmentCompletedPayloadV1 struct {
	RunID      string `json:"run_id"`
	Total      int    `json:"total"`
	Done       int    `json:"done"`
	Fallbacks  int    `json:"fallbacks"`
	Cancelled  bool   `json:"cancelled"`
	DurationMs int64  `json:"duration_ms"`
}

// NewReferenceRefreshedEvent creates a reference refreshed event
func NewReferenceRefreshedEvent(records, attempts int, fetchedAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ReferenceRefreshed,
		Payload: ReferenceRefreshedPayloadV1{
			Records:   records,
			Attempts:  attempts,
			FetchedAt: fetchedAt,
		},
	}
}

// NewReferenceFetchFailedEvent creates a reference fetch failure event
func NewReferenceFetchFailedEvent(attempts int, err error, hasStale bool) Event {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    ReferenceFetchFailed,
		Payload: ReferenceFetchFailedPayloadV1{
			Attempts:  attempts,
			Error:     msg,
			HasStale:  hasStale,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewReferenceInvalidatedEvent creates a reference invalidation event
func NewReferenceInvalidatedEvent(source string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     ReferenceInvalidated,
		Metadata: map[string]interface{}{"source": source},
	}
}

// NewEnrichmentSliceEvent creates a slice progress event
func NewEnrichmentSliceEvent(p EnrichmentProgressPayloadV1) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     EnrichmentSliceCompleted,
		Payload:  p,
		Metadata: map[string]interface{}{"run_id": p.RunID},
	}
}

// NewEnrichmentCompletedEvent creates a run completion event
func NewEnrichmentCompletedEvent(p EnrichmentCompletedPayloadV1) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     EnrichmentCompleted,
		Payload:  p,
		Metadata: map[string]interface{}{"run_id": p.RunID},
	}
}

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously. All handlers run even when
// some fail; their errors are aggregated.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs *multierror.Error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if errs != nil {
		return fmt.Errorf(LogMsgHandlerErrorFormat+": %w", len(errs.Errors), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish is a nil-safe helper for components whose bus is optional.
func Publish(ctx context.Context, bus Bus, evt Event) error {
	if bus == nil {
		return nil
	}
	return bus.Publish(ctx, evt)
}
