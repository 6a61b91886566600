package enrichment

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/logger"
	"github.com/osse101/GlobePalette_Go/internal/palette"
)

// Source resolves already-identified features by code.
type Source interface {
	LookupCode(ctx context.Context, code string) (domain.Country, bool, error)
}

// PaletteBuilder derives a display palette for a country.
type PaletteBuilder interface {
	Build(ctx context.Context, country domain.Country, opts palette.Options) palette.Display
}

// YieldFunc hands control back to the host between slices. Returning an
// error stops the run.
type YieldFunc func(ctx context.Context) error

// Options configures a Scheduler.
type Options struct {
	SliceSize int
	Publisher Publisher
	Yield     YieldFunc
}

// Report summarizes one run.
type Report struct {
	RunID     string        `json:"run_id"`
	Total     int           `json:"total"`
	Done      int           `json:"done"`
	Slices    int           `json:"slices"`
	Fallbacks int           `json:"fallbacks"`
	Cancelled bool          `json:"cancelled"`
	Duration  time.Duration `json:"duration"`
}

// Scheduler colors features slice by slice. Slices run strictly in order;
// features inside one slice run concurrently, and each goroutine writes only
// its own feature's Color.
type Scheduler struct {
	builder PaletteBuilder
	opts    Options
}

// NewScheduler creates a scheduler.
func NewScheduler(builder PaletteBuilder, opts Options) *Scheduler {
	if opts.SliceSize <= 0 {
		opts.SliceSize = DefaultSliceSize
	}
	if opts.Yield == nil {
		opts.Yield = GoschedYield
	}
	return &Scheduler{builder: builder, opts: opts}
}

// GoschedYield yields the processor and reports cancellation.
func GoschedYield(ctx context.Context) error {
	runtime.Gosched()
	return ctx.Err()
}

// Enrich sets every feature's Color to its palette accent, or to its
// BaseColor when the code is unknown or derivation fails. Progress is
// published after each slice. Cancelling ctx stops further slices; colors
// already written stay in place.
func (s *Scheduler) Enrich(ctx context.Context, features []*domain.Feature, src Source) error {
	_, err := s.Run(ctx, features, src)
	return err
}

// Run is Enrich returning the run report.
func (s *Scheduler) Run(ctx context.Context, features []*domain.Feature, src Source) (Report, error) {
	start := time.Now()
	size := s.opts.SliceSize
	report := Report{
		RunID:  uuid.NewString(),
		Total:  len(features),
		Slices: (len(features) + size - 1) / size,
	}
	ctx = logger.WithRunID(ctx, report.RunID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgRunStarted, "features", report.Total, "slices", report.Slices, "slice_size", size)

	var fallbacks atomic.Int64
	finish := func(err error) (Report, error) {
		report.Fallbacks = int(fallbacks.Load())
		report.Duration = time.Since(start)
		report.Cancelled = err != nil
		if err != nil {
			log.Warn(LogMsgRunCancelled, "done", report.Done, "total", report.Total, "error", err)
		} else {
			log.Info(LogMsgRunFinished,
				"done", report.Done,
				"fallbacks", report.Fallbacks,
				"duration_ms", report.Duration.Milliseconds())
		}
		s.complete(ctx, report)
		return report, err
	}

	for slice := 0; slice < report.Slices; slice++ {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}

		lo := slice * size
		hi := min(lo+size, len(features))
		batch := features[lo:hi]

		g := new(errgroup.Group)
		g.SetLimit(size)
		for _, f := range batch {
			g.Go(func() error {
				if !s.enrichOne(ctx, f, src) {
					fallbacks.Add(1)
				}
				return nil
			})
		}
		_ = g.Wait()

		report.Done = hi
		progress := Progress{
			RunID:  report.RunID,
			Slice:  slice + 1,
			Slices: report.Slices,
			Done:   report.Done,
			Total:  report.Total,
			Colors: colorsOf(batch),
		}
		log.Debug(LogMsgSliceCompleted, "slice", progress.Slice, "done", progress.Done)
		s.publish(ctx, progress)

		if slice+1 < report.Slices {
			if err := s.opts.Yield(ctx); err != nil {
				return finish(err)
			}
		}
	}

	return finish(nil)
}

// enrichOne colors one feature and reports whether it got a palette accent.
// It never panics; any failure leaves BaseColor in place.
func (s *Scheduler) enrichOne(ctx context.Context, f *domain.Feature, src Source) (ok bool) {
	if f == nil {
		logger.FromContext(ctx).Debug(LogMsgNilFeatureFound)
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Warn(LogMsgFeaturePanic, "code", f.Code, "panic", r)
			f.Color = f.BaseColor
			ok = false
		}
	}()

	if src == nil || s.builder == nil {
		f.Color = f.BaseColor
		return false
	}

	country, found, err := src.LookupCode(ctx, f.Code)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgLookupFailed, "code", f.Code, "error", err)
		f.Color = f.BaseColor
		return false
	}
	if !found {
		f.Color = f.BaseColor
		return false
	}

	base := f.BaseColor
	display := s.builder.Build(ctx, country, palette.Options{BaseColor: &base})
	f.Color = display.Accent
	return true
}

func (s *Scheduler) publish(ctx context.Context, p Progress) {
	if s.opts.Publisher == nil {
		return
	}
	if err := s.opts.Publisher.Publish(ctx, p); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "slice", p.Slice, "error", err)
	}
}

func (s *Scheduler) complete(ctx context.Context, r Report) {
	c, ok := s.opts.Publisher.(Completer)
	if !ok {
		return
	}
	if err := c.Complete(ctx, r); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
}

func colorsOf(batch []*domain.Feature) []domain.FeatureColor {
	out := make([]domain.FeatureColor, 0, len(batch))
	for _, f := range batch {
		if f == nil {
			continue
		}
		out = append(out, domain.FeatureColor{Code: f.Code, Color: f.Color})
	}
	return out
}
