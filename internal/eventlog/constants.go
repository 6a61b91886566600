package eventlog

import "github.com/osse101/GlobePalette_Go/internal/event"

// AuditedTypes are the bus events written to the log. Per-slice progress is
// left out; the completion event carries the run totals.
var AuditedTypes = []event.Type{
	event.ReferenceRefreshed,
	event.ReferenceFetchFailed,
	event.ReferenceInvalidated,
	event.EnrichmentCompleted,
}

// JSON payload field keys
const (
	PayloadKeyRunID = "run_id"
)

// Query limits
const (
	DefaultQueryLimit    = 50
	MaxQueryLimit        = 500
	DefaultRetentionDays = 30
)

// Log messages - service events
const (
	LogMsgPayloadNotObject = "Event payload is not an object, skipping log"
	LogMsgFailedToLogEvent = "Failed to log event to database"
	LogMsgEventLogged      = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)
