package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Log message constants
const (
	LogMsgHandlerFailed = "Event handler failed"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s"
)
