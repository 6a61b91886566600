package worker

import "time"

// Pool defaults
const (
	DefaultWorkers   = 2
	DefaultQueueSize = 16
)

// DefaultRefreshTimeout bounds one background reference refresh.
const DefaultRefreshTimeout = 2 * time.Minute

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgQueueFull         = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Reference Refresh
// ============================================================================

const (
	LogMsgBackgroundRefreshStarting  = "Background reference refresh starting"
	LogMsgBackgroundRefreshCompleted = "Background reference refresh completed"
	LogMsgBackgroundRefreshFailed    = "Background reference refresh failed"
)
