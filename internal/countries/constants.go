package countries

import "time"

// Cache defaults
const (
	DefaultTTL         = 30 * time.Minute
	DefaultMaxAttempts = 3
	DefaultBaseBackoff = time.Second

	// singleflight key for the one shared refresh
	refreshKey = "reference-set"
)

// DefaultReferenceURL is the bulk endpoint of the public country API.
const DefaultReferenceURL = "https://restcountries.com/v3.1/all?fields=name,altSpellings,cca2,cca3,continents,region,flags"

// Log messages
const (
	LogMsgReferenceFresh       = "Reference set served from cache"
	LogMsgReferenceRefreshing  = "Refreshing reference set"
	LogMsgReferenceRefreshed   = "Reference set refreshed"
	LogMsgFetchAttemptFailed   = "Reference fetch attempt failed"
	LogMsgFetchNotRetryable    = "Reference fetch failed with non-retryable error"
	LogMsgReferenceUnavailable = "Reference set unavailable after retries"
	LogMsgServingStale         = "Serving stale reference snapshot"
	LogMsgReferenceInvalidated = "Reference set invalidated"
	LogMsgSnapshotLoaded       = "Reference snapshot loaded"
	LogMsgEventPublishFailed   = "Failed to publish reference event"
	LogMsgRecordSkipped        = "Skipping reference record without name or code"
)

// Error messages
const (
	ErrMsgEmptyReferenceSet = "reference source returned no records"
	ErrMsgUnexpectedStatus  = "unexpected status %d from reference source"
	ErrMsgInvalidPayload    = "reference payload is not a JSON array"
)
