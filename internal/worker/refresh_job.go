package worker

import (
	"context"
	"time"

	"github.com/osse101/GlobePalette_Go/internal/countries"
	"github.com/osse101/GlobePalette_Go/internal/logger"
)

// Refresher forces a reference set fetch.
type Refresher interface {
	Refresh(ctx context.Context) (*countries.Snapshot, error)
}

// RefreshJob refetches the reference set in the background. A failed
// refresh leaves the previous snapshot in place.
type RefreshJob struct {
	refresher Refresher
	timeout   time.Duration
}

// NewRefreshJob creates a refresh job. A non-positive timeout selects
// DefaultRefreshTimeout.
func NewRefreshJob(refresher Refresher, timeout time.Duration) *RefreshJob {
	if timeout <= 0 {
		timeout = DefaultRefreshTimeout
	}
	return &RefreshJob{refresher: refresher, timeout: timeout}
}

// Process executes the refresh
func (j *RefreshJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	log := logger.FromContext(ctx)
	log.Info(LogMsgBackgroundRefreshStarting)

	start := time.Now()
	s, err := j.refresher.Refresh(ctx)
	if err != nil {
		log.Error(LogMsgBackgroundRefreshFailed, "error", err, "duration", time.Since(start))
		return err
	}

	log.Info(LogMsgBackgroundRefreshCompleted, "records", len(s.Records), "duration", time.Since(start))
	return nil
}
