package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/osse101/GlobePalette_Go/internal/countries"
	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/event"
	"github.com/osse101/GlobePalette_Go/internal/flag"
	"github.com/osse101/GlobePalette_Go/internal/logger"
	"github.com/osse101/GlobePalette_Go/internal/worker"
)

// ReferenceCache is the part of countries.Cache the service needs.
type ReferenceCache interface {
	Snapshot() *countries.Snapshot
	Stats() countries.Stats
	Load(ctx context.Context, records []domain.Country, fetchedAt time.Time)
}

// FlagCache is the part of flag.Cache the service needs.
type FlagCache interface {
	Entries() []flag.CachedResult
	Restore(results []flag.CachedResult)
}

// WarmStartReport describes what a warm start restored.
type WarmStartReport struct {
	Records     int       `json:"records"`
	FetchedAt   time.Time `json:"fetched_at,omitempty"`
	Fresh       bool      `json:"fresh"`
	FlagResults int       `json:"flag_results"`
}

// Service moves cache contents to and from a Repository.
type Service interface {
	// WarmStart loads the persisted reference set and flag results into the
	// caches. A snapshot older than the freshness window is loaded as
	// stale and refreshed on next access.
	WarmStart(ctx context.Context) (WarmStartReport, error)

	// Persist saves the current reference set and flag results.
	Persist(ctx context.Context) error

	// Subscribe queues a persist job after every successful reference refresh.
	Subscribe(bus event.Bus, enqueue func(worker.Job) bool)
}

type service struct {
	repo      Repository
	reference ReferenceCache
	flags     FlagCache
	flagLimit int
}

// NewService creates a snapshot service. flagLimit caps how many flag results
// a warm start restores; it should match the flag cache size.
func NewService(repo Repository, reference ReferenceCache, flags FlagCache, flagLimit int) Service {
	return &service{repo: repo, reference: reference, flags: flags, flagLimit: flagLimit}
}

func (s *service) WarmStart(ctx context.Context) (WarmStartReport, error) {
	log := logger.FromContext(ctx)
	var report WarmStartReport

	ref, err := s.repo.LoadReference(ctx)
	if err != nil {
		return report, fmt.Errorf("%s: %w", ErrMsgLoadReference, err)
	}
	if ref == nil || len(ref.Records) == 0 {
		log.Info(LogMsgWarmStartEmpty)
	} else {
		s.reference.Load(ctx, ref.Records, ref.FetchedAt)
		report.Records = len(ref.Records)
		report.FetchedAt = ref.FetchedAt
		report.Fresh = s.reference.Stats().Fresh
		log.Info(LogMsgWarmStartReference, "records", report.Records, "fetched_at", ref.FetchedAt, "fresh", report.Fresh)
	}

	if s.flags == nil {
		return report, nil
	}
	results, err := s.repo.LoadFlagResults(ctx, s.flagLimit)
	if err != nil {
		return report, fmt.Errorf("%s: %w", ErrMsgLoadFlags, err)
	}
	s.flags.Restore(results)
	report.FlagResults = len(results)
	log.Info(LogMsgWarmStartFlags, "count", len(results))

	return report, nil
}

func (s *service) Persist(ctx context.Context) error {
	log := logger.FromContext(ctx)
	var errs *multierror.Error

	if snap := s.reference.Snapshot(); snap != nil {
		if err := s.repo.SaveReference(ctx, Reference{Records: snap.Records, FetchedAt: snap.FetchedAt}); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", ErrMsgSaveReference, err))
		} else {
			log.Info(LogMsgReferenceSaved, "records", len(snap.Records), "fetched_at", snap.FetchedAt)
		}
	}

	if s.flags != nil {
		if results := s.flags.Entries(); len(results) > 0 {
			if err := s.repo.SaveFlagResults(ctx, results); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", ErrMsgSaveFlags, err))
			} else {
				log.Info(LogMsgFlagResultsSaved, "count", len(results))
			}
		}
	}

	return errs.ErrorOrNil()
}

func (s *service) Subscribe(bus event.Bus, enqueue func(worker.Job) bool) {
	job := NewPersistJob(s)
	bus.Subscribe(event.ReferenceRefreshed, func(ctx context.Context, evt event.Event) error {
		if enqueue(job) {
			logger.FromContext(ctx).Debug(LogMsgPersistQueued)
		} else {
			logger.FromContext(ctx).Warn(LogMsgPersistNotQueued)
		}
		return nil
	})
}
