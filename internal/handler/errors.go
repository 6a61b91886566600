package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidColorParam = "Invalid %s color"

	// Country and palette error messages
	ErrMsgResolveFailed    = "Failed to resolve country"
	ErrMsgPaletteFailed    = "Failed to build palette"
	ErrMsgCountryNotFound  = "No country matches that name"
	ErrMsgInvalidCodeParam = "Country code must be 2 or 3 letters"

	// Enrichment error messages
	ErrMsgEnrichFailed = "Failed to enrich features"

	// Event log error messages
	ErrMsgInvalidLimitParam = "limit must be a positive integer"
	ErrMsgInvalidSinceParam = "since must be an RFC 3339 timestamp"
	ErrMsgEventsFailed      = "Failed to read event log"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgValidationFailed  = "Request validation failed"
	LogMsgServiceError      = "Service call failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReferenceReset    = "Reference set invalidated via admin endpoint"
	LogMsgEnrichRunFinished = "Enrichment request finished"
)

