package globe

// Log messages
const (
	LogMsgResolved          = "Country resolved"
	LogMsgResolveMiss       = "Country name did not resolve"
	LogMsgResolvedFromStale = "Country resolved from stale reference set"
	LogMsgEnrichRequested   = "Enrichment requested"

	LogMsgEnrichWithoutReference = "Reference set unavailable, enriching with base colors"
)

// Error messages
const (
	ErrMsgEmptyName = "country name is empty"
	ErrMsgEmptyCode = "country code is empty"
)
