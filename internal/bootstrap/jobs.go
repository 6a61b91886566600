package bootstrap

import (
	"log/slog"
	"time"

	"github.com/osse101/GlobePalette_Go/internal/eventlog"
	"github.com/osse101/GlobePalette_Go/internal/scheduler"
	"github.com/osse101/GlobePalette_Go/internal/worker"
)

// BackgroundJobs configures the periodic work handed to the scheduler.
type BackgroundJobs struct {
	Refresher       worker.Refresher
	RefreshInterval time.Duration
	RefreshTimeout  time.Duration
	// EventLog is nil when persistence is disabled.
	EventLog eventlog.Service
}

// ScheduleJobs registers the background refresh and event log cleanup. An
// interval of zero leaves the refresh to on-demand access only.
func ScheduleJobs(s *scheduler.Scheduler, jobs BackgroundJobs) {
	if jobs.RefreshInterval > 0 && jobs.Refresher != nil {
		s.Schedule(JobNameReferenceRefresh, jobs.RefreshInterval,
			worker.NewRefreshJob(jobs.Refresher, jobs.RefreshTimeout))
		slog.Info(LogMsgRefreshScheduled, "interval", jobs.RefreshInterval)
	} else {
		slog.Info(LogMsgRefreshDisabled)
	}

	if jobs.EventLog != nil {
		s.Schedule(JobNameEventLogCleanup, EventLogCleanupInterval,
			eventlog.NewCleanupJob(jobs.EventLog, eventlog.DefaultRetentionDays))
		slog.Info(LogMsgCleanupScheduled, "interval", EventLogCleanupInterval)
	}
}
