package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Reference data metric names
const (
	MetricNameReferenceRefreshes     = "reference_refreshes_total"
	MetricNameReferenceFetchAttempts = "reference_fetch_attempts_total"
	MetricNameReferenceRecords       = "reference_records"
	MetricNameReferenceInvalidations = "reference_invalidations_total"
)

// Enrichment metric names
const (
	MetricNameEnrichmentRuns        = "enrichment_runs_total"
	MetricNameEnrichmentSlices      = "enrichment_slices_total"
	MetricNameEnrichmentFeatures    = "enrichment_features_total"
	MetricNameEnrichmentRunDuration = "enrichment_run_duration_seconds"
)

// Flag palette metric names, read from the extractor's counters at scrape time
const (
	MetricNameFlagExtractions = "flag_extractions_total"
	MetricNameFlagFallbacks   = "flag_extraction_fallbacks_total"
	MetricNameFlagPanics      = "flag_extraction_panics_total"
	MetricNameFlagCacheHits   = "flag_palette_cache_hits_total"
	MetricNameFlagCacheMisses = "flag_palette_cache_misses_total"
	MetricNameFlagCacheSize   = "flag_palette_cache_entries"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Reference data metric help text
const (
	HelpTextReferenceRefreshes     = "Reference set refreshes by result"
	HelpTextReferenceFetchAttempts = "Upstream fetch attempts made by reference refreshes"
	HelpTextReferenceRecords       = "Records in the current reference set"
	HelpTextReferenceInvalidations = "Reference set invalidations by source"
)

// Enrichment metric help text
const (
	HelpTextEnrichmentRuns        = "Enrichment runs by result"
	HelpTextEnrichmentSlices      = "Enrichment slices completed"
	HelpTextEnrichmentFeatures    = "Features colored by outcome"
	HelpTextEnrichmentRunDuration = "Enrichment run duration in seconds"
)

// Flag metric help text
const (
	HelpTextFlagExtractions = "Flag images sampled"
	HelpTextFlagFallbacks   = "Flag extractions that degraded to the fallback color"
	HelpTextFlagPanics      = "Panics recovered during flag extraction"
	HelpTextFlagCacheHits   = "Palette cache hits"
	HelpTextFlagCacheMisses = "Palette cache misses"
	HelpTextFlagCacheSize   = "Entries in the palette cache"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelResult  = "result"
	LabelSource  = "source"
	LabelOutcome = "outcome"
)

// Label values
const (
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultCompleted = "completed"
	ResultCancelled = "cancelled"
	OutcomeAccent   = "accent"
	OutcomeFallback = "fallback"
	PathUnmatched   = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// EnrichmentDurationBuckets covers runs from 10ms to 2 minutes.
var EnrichmentDurationBuckets = []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30, 60, 120}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
