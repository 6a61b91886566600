package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeEnrichmentProgress carries the colors of one finished slice
	EventTypeEnrichmentProgress = "enrichment.progress"

	// EventTypeEnrichmentCompleted is sent once per run, finished or cancelled
	EventTypeEnrichmentCompleted = "enrichment.completed"

	// EventTypeReferenceRefreshed is sent after the reference set was reloaded
	EventTypeReferenceRefreshed = "reference.refreshed"

	// EventTypeReferenceUnavailable is sent when every fetch attempt failed
	EventTypeReferenceUnavailable = "reference.unavailable"

	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes = "types"
	QueryParamRunID = "run_id"
)

// Log messages
const (
	LogMsgClientConnected     = "SSE client connected"
	LogMsgClientDisconnected  = "SSE client disconnected"
	LogMsgEventBroadcast      = "Broadcasting SSE event"
	LogMsgEventDropped        = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError          = "Failed to write SSE event"
	LogMsgInvalidPayload      = "Invalid event payload for SSE"
	LogMsgSubscriberRegistred = "SSE subscriber registered for event types"
)
