package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/GlobePalette_Go/internal/flag"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Reference data metrics
var (
	ReferenceRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReferenceRefreshes,
			Help: HelpTextReferenceRefreshes,
		},
		[]string{LabelResult},
	)

	ReferenceFetchAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReferenceFetchAttempts,
			Help: HelpTextReferenceFetchAttempts,
		},
	)

	ReferenceRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameReferenceRecords,
			Help: HelpTextReferenceRecords,
		},
	)

	ReferenceInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReferenceInvalidations,
			Help: HelpTextReferenceInvalidations,
		},
		[]string{LabelSource},
	)
)

// Enrichment metrics
var (
	EnrichmentRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnrichmentRuns,
			Help: HelpTextEnrichmentRuns,
		},
		[]string{LabelResult},
	)

	EnrichmentSlices = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEnrichmentSlices,
			Help: HelpTextEnrichmentSlices,
		},
	)

	EnrichmentFeatures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnrichmentFeatures,
			Help: HelpTextEnrichmentFeatures,
		},
		[]string{LabelOutcome},
	)

	EnrichmentRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameEnrichmentRunDuration,
			Help:    HelpTextEnrichmentRunDuration,
			Buckets: EnrichmentDurationBuckets,
		},
	)
)

// FlagStatsSource is implemented by flag.Extractor.
type FlagStatsSource interface {
	Stats() flag.Stats
}

// RegisterFlagStats exposes the extractor's counters. They are read at
// scrape time rather than mirrored on every extraction.
func RegisterFlagStats(reg prometheus.Registerer, src FlagStatsSource) error {
	counter := func(name, help string, read func(flag.Stats) int64) prometheus.Collector {
		return prometheus.NewCounterFunc(prometheus.CounterOpts{Name: name, Help: help}, func() float64 {
			return float64(read(src.Stats()))
		})
	}

	collectors := []prometheus.Collector{
		counter(MetricNameFlagExtractions, HelpTextFlagExtractions, func(s flag.Stats) int64 { return s.Extractions }),
		counter(MetricNameFlagFallbacks, HelpTextFlagFallbacks, func(s flag.Stats) int64 { return s.Fallbacks }),
		counter(MetricNameFlagPanics, HelpTextFlagPanics, func(s flag.Stats) int64 { return s.Panics }),
		counter(MetricNameFlagCacheHits, HelpTextFlagCacheHits, func(s flag.Stats) int64 { return s.CacheHits }),
		counter(MetricNameFlagCacheMisses, HelpTextFlagCacheMisses, func(s flag.Stats) int64 { return s.CacheMisses }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{Name: MetricNameFlagCacheSize, Help: HelpTextFlagCacheSize}, func() float64 {
			return float64(src.Stats().CacheSize)
		}),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
