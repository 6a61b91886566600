package metrics

import (
	"context"
	"time"

	"github.com/osse101/GlobePalette_Go/internal/event"
	"github.com/osse101/GlobePalette_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ReferenceRefreshed,
		event.ReferenceFetchFailed,
		event.ReferenceInvalidated,
		event.EnrichmentSliceCompleted,
		event.EnrichmentCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Undecodable payloads
// are logged and skipped; metrics never fail a publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ReferenceRefreshed:
		var p event.ReferenceRefreshedPayloadV1
		if p, err = event.DecodePayload[event.ReferenceRefreshedPayloadV1](evt.Payload); err == nil {
			ReferenceRefreshes.WithLabelValues(ResultSuccess).Inc()
			ReferenceFetchAttempts.Add(float64(p.Attempts))
			ReferenceRecords.Set(float64(p.Records))
		}

	case event.ReferenceFetchFailed:
		var p event.ReferenceFetchFailedPayloadV1
		if p, err = event.DecodePayload[event.ReferenceFetchFailedPayloadV1](evt.Payload); err == nil {
			ReferenceRefreshes.WithLabelValues(ResultFailure).Inc()
			ReferenceFetchAttempts.Add(float64(p.Attempts))
		}

	case event.ReferenceInvalidated:
		source, _ := evt.GetMetadataValue("source").(string)
		ReferenceInvalidations.WithLabelValues(source).Inc()

	case event.EnrichmentSliceCompleted:
		EnrichmentSlices.Inc()

	case event.EnrichmentCompleted:
		var p event.EnrichmentCompletedPayloadV1
		if p, err = event.DecodePayload[event.EnrichmentCompletedPayloadV1](evt.Payload); err == nil {
			result := ResultCompleted
			if p.Cancelled {
				result = ResultCancelled
			}
			EnrichmentRuns.WithLabelValues(result).Inc()
			EnrichmentFeatures.WithLabelValues(OutcomeAccent).Add(float64(p.Done - p.Fallbacks))
			EnrichmentFeatures.WithLabelValues(OutcomeFallback).Add(float64(p.Fallbacks))
			EnrichmentRunDuration.Observe((time.Duration(p.DurationMs) * time.Millisecond).Seconds())
		}
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
