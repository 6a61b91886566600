package countries

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/event"
	"github.com/osse101/GlobePalette_Go/internal/logger"
	"github.com/osse101/GlobePalette_Go/internal/naming"
)

// Options configures a Cache. Zero values select the defaults.
type Options struct {
	TTL         time.Duration
	MaxAttempts int
	// BaseBackoff is the wait before the second attempt; each later wait doubles.
	BaseBackoff time.Duration
	Matcher     *naming.Matcher
	Bus         event.Bus

	// Now and Sleep are replaced in tests.
	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
}

// Stats is a point-in-time view of the cache.
type Stats struct {
	Records       int       `json:"records"`
	FetchedAt     time.Time `json:"fetched_at,omitempty"`
	Fresh         bool      `json:"fresh"`
	Refreshes     int64     `json:"refreshes"`
	Attempts      int64     `json:"attempts"`
	Failures      int64     `json:"failures"`
	Invalidations int64     `json:"invalidations"`
}

// Cache holds the reference set for a bounded freshness window. Concurrent
// callers that find it stale share a single refresh.
type Cache struct {
	fetcher Fetcher
	opts    Options

	mu          sync.RWMutex
	snap        *Snapshot
	invalidated bool

	sf singleflight.Group

	refreshes     atomic.Int64
	attempts      atomic.Int64
	failures      atomic.Int64
	invalidations atomic.Int64
}

// NewCache creates a cache over fetcher.
func NewCache(fetcher Fetcher, opts Options) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.BaseBackoff <= 0 {
		opts.BaseBackoff = DefaultBaseBackoff
	}
	if opts.Matcher == nil {
		opts.Matcher = naming.NewMatcher(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	return &Cache{fetcher: fetcher, opts: opts}
}

// Matcher returns the matcher used to build lookup tables.
func (c *Cache) Matcher() *naming.Matcher {
	return c.opts.Matcher
}

// TTL returns the freshness window.
func (c *Cache) TTL() time.Duration {
	return c.opts.TTL
}

// GetReferenceSet returns the current records, refreshing them when the
// snapshot is missing or older than the freshness window. On total failure it
// returns an error wrapping domain.ErrUpstreamUnavailable and keeps the
// previous snapshot.
func (c *Cache) GetReferenceSet(ctx context.Context) ([]domain.Country, error) {
	s, err := c.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.Records, nil
}

// GetSnapshot is GetReferenceSet returning the indexed snapshot.
func (c *Cache) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	if s := c.fresh(); s != nil {
		logger.FromContext(ctx).Debug(LogMsgReferenceFresh, "records", len(s.Records))
		return s, nil
	}

	// The shared refresh must not die with whichever caller started it.
	shared := context.WithoutCancel(ctx)
	return c.wait(ctx, c.sf.DoChan(refreshKey, func() (interface{}, error) {
		if s := c.fresh(); s != nil {
			return s, nil
		}
		return c.refresh(shared)
	}))
}

// Refresh fetches a new reference set regardless of freshness. It joins a
// refresh already in flight. On failure the previous snapshot is kept.
func (c *Cache) Refresh(ctx context.Context) (*Snapshot, error) {
	shared := context.WithoutCancel(ctx)
	return c.wait(ctx, c.sf.DoChan(refreshKey, func() (interface{}, error) {
		return c.refresh(shared)
	}))
}

// wait returns the shared refresh result, or ctx's error if the caller gives
// up first. The refresh itself keeps running for the other callers.
func (c *Cache) wait(ctx context.Context, ch <-chan singleflight.Result) (*Snapshot, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	}
}

// Usable returns a fresh snapshot when possible and falls back to the last
// good one when a refresh fails. It errors only when no snapshot was ever
// loaded.
func (c *Cache) Usable(ctx context.Context) (*Snapshot, bool, error) {
	s, err := c.GetSnapshot(ctx)
	if err == nil {
		return s, false, nil
	}
	if ctx.Err() != nil {
		return nil, false, err
	}
	if last := c.Snapshot(); last != nil {
		logger.FromContext(ctx).Warn(LogMsgServingStale,
			"fetched_at", last.FetchedAt,
			"error", err)
		return last, true, nil
	}
	return nil, false, err
}

// LookupCode resolves a record by code through Usable.
func (c *Cache) LookupCode(ctx context.Context, code string) (domain.Country, bool, error) {
	s, _, err := c.Usable(ctx)
	if err != nil {
		return domain.Country{}, false, err
	}
	rec, ok := s.LookupCode(code)
	return rec, ok, nil
}

// Snapshot returns the last successfully loaded snapshot, fresh or not.
func (c *Cache) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Load installs records fetched elsewhere (e.g. a persisted snapshot). A
// fetchedAt older than the freshness window makes the next access refresh.
func (c *Cache) Load(ctx context.Context, records []domain.Country, fetchedAt time.Time) {
	if len(records) == 0 {
		return
	}
	s := newSnapshot(records, c.opts.Matcher, fetchedAt)

	c.mu.Lock()
	c.snap = s
	c.invalidated = false
	c.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSnapshotLoaded,
		"records", len(records),
		"fetched_at", fetchedAt,
		"fresh", s.FreshAt(c.opts.Now(), c.opts.TTL))
}

// Invalidate marks the snapshot stale so the next access refetches. The
// snapshot itself stays available through Snapshot and Usable.
func (c *Cache) Invalidate(ctx context.Context, source string) {
	c.mu.Lock()
	c.invalidated = true
	c.mu.Unlock()
	c.invalidations.Add(1)

	logger.FromContext(ctx).Info(LogMsgReferenceInvalidated, "source", source)
	c.publish(ctx, event.NewReferenceInvalidatedEvent(source))
}

// Stats reports counters and the current snapshot state.
func (c *Cache) Stats() Stats {
	st := Stats{
		Refreshes:     c.refreshes.Load(),
		Attempts:      c.attempts.Load(),
		Failures:      c.failures.Load(),
		Invalidations: c.invalidations.Load(),
	}
	if s := c.Snapshot(); s != nil {
		st.Records = len(s.Records)
		st.FetchedAt = s.FetchedAt
		st.Fresh = c.fresh() != nil
	}
	return st
}

func (c *Cache) fresh() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.invalidated || !c.snap.FreshAt(c.opts.Now(), c.opts.TTL) {
		return nil
	}
	return c.snap
}

func (c *Cache) refresh(ctx context.Context) (*Snapshot, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReferenceRefreshing, "max_attempts", c.opts.MaxAttempts)
	c.refreshes.Add(1)

	var errs *multierror.Error
	attempt := 0
	for attempt < c.opts.MaxAttempts {
		if attempt > 0 {
			if err := c.opts.Sleep(ctx, c.backoff(attempt)); err != nil {
				errs = multierror.Append(errs, err)
				break
			}
		}
		attempt++
		c.attempts.Add(1)

		records, err := c.fetcher.Fetch(ctx)
		if err == nil && len(records) == 0 {
			err = errors.New(ErrMsgEmptyReferenceSet)
		}
		if err == nil {
			s := newSnapshot(records, c.opts.Matcher, c.opts.Now())
			c.mu.Lock()
			c.snap = s
			c.invalidated = false
			c.mu.Unlock()

			log.Info(LogMsgReferenceRefreshed, "records", len(records), "attempts", attempt)
			c.publish(ctx, event.NewReferenceRefreshedEvent(len(records), attempt, s.FetchedAt))
			return s, nil
		}

		errs = multierror.Append(errs, fmt.Errorf("attempt %d: %w", attempt, err))
		if !IsRetryable(err) {
			log.Warn(LogMsgFetchNotRetryable, "attempt", attempt, "error", err)
			break
		}
		log.Warn(LogMsgFetchAttemptFailed, "attempt", attempt, "error", err)
	}

	c.failures.Add(1)
	hasStale := c.Snapshot() != nil
	log.Error(LogMsgReferenceUnavailable, "attempts", attempt, "has_stale", hasStale, "error", errs)
	c.publish(ctx, event.NewReferenceFetchFailedEvent(attempt, errs.ErrorOrNil(), hasStale))

	return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, errs.ErrorOrNil())
}

// backoff returns the wait before attempt n+1 (n >= 1): base, 2*base, 4*base...
func (c *Cache) backoff(n int) time.Duration {
	return c.opts.BaseBackoff * time.Duration(1<<(n-1))
}

func (c *Cache) publish(ctx context.Context, evt event.Event) {
	if err := event.Publish(ctx, c.opts.Bus, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
