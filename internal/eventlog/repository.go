package eventlog

import (
	"context"
	"time"
)

// Event is one audited bus event
type Event struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	RunID     *string                `json:"run_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EventFilter filters events for queries
type EventFilter struct {
	RunID     *string
	EventType *string
	Since     *time.Time
	Until     *time.Time
	Limit     int
}

// Repository defines the interface for event log storage
type Repository interface {
	// LogEvent stores an event
	LogEvent(ctx context.Context, eventType string, runID *string, payload, metadata map[string]interface{}) error

	// GetEvents retrieves events newest first
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
