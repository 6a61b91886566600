package enrichment

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/event"
)

// Progress describes one completed slice. Colors holds the final colors of
// that slice's features.
type Progress struct {
	RunID  string                `json:"run_id"`
	Slice  int                   `json:"slice"`
	Slices int                   `json:"slices"`
	Done   int                   `json:"done"`
	Total  int                   `json:"total"`
	Colors []domain.FeatureColor `json:"colors"`
}

// Publisher receives progress after every slice.
type Publisher interface {
	Publish(ctx context.Context, p Progress) error
}

// Completer is implemented by publishers that also want the final report.
type Completer interface {
	Complete(ctx context.Context, r Report) error
}

// PublisherFunc adapts a callback to Publisher.
type PublisherFunc func(ctx context.Context, p Progress) error

// Publish calls f.
func (f PublisherFunc) Publish(ctx context.Context, p Progress) error {
	return f(ctx, p)
}

// BusPublisher forwards progress and completion to an event bus.
type BusPublisher struct {
	bus event.Bus
}

// NewBusPublisher creates a BusPublisher.
func NewBusPublisher(bus event.Bus) *BusPublisher {
	return &BusPublisher{bus: bus}
}

// Publish emits an enrichment.slice_completed event.
func (b *BusPublisher) Publish(ctx context.Context, p Progress) error {
	return event.Publish(ctx, b.bus, event.NewEnrichmentSliceEvent(event.EnrichmentProgressPayloadV1{
		RunID:  p.RunID,
		Slice:  p.Slice,
		Slices: p.Slices,
		Done:   p.Done,
		Total:  p.Total,
		Colors: p.Colors,
	}))
}

// Complete emits an enrichment.completed event.
func (b *BusPublisher) Complete(ctx context.Context, r Report) error {
	return event.Publish(ctx, b.bus, event.NewEnrichmentCompletedEvent(event.EnrichmentCompletedPayloadV1{
		RunID:      r.RunID,
		Total:      r.Total,
		Done:       r.Done,
		Fallbacks:  r.Fallbacks,
		Cancelled:  r.Cancelled,
		DurationMs: r.Duration.Milliseconds(),
	}))
}

// multiPublisher fans out to several publishers.
type multiPublisher []Publisher

// Publishers combines publishers; nil entries are dropped. Every publisher
// is called even if an earlier one fails.
func Publishers(ps ...Publisher) Publisher {
	var out multiPublisher
	for _, p := range ps {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (m multiPublisher) Publish(ctx context.Context, p Progress) error {
	var errs *multierror.Error
	for _, pub := range m {
		if err := pub.Publish(ctx, p); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func (m multiPublisher) Complete(ctx context.Context, r Report) error {
	var errs *multierror.Error
	for _, pub := range m {
		if c, ok := pub.(Completer); ok {
			if err := c.Complete(ctx, r); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	return errs.ErrorOrNil()
}
