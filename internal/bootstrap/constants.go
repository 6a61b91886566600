package bootstrap

import "time"

// =============================================================================
// Logger
// =============================================================================

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting GlobePalette"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Reference data and palettes
// =============================================================================

const (
	LogMsgAliasesLoaded    = "Country aliases loaded"
	LogMsgContinentsLoaded = "Continent color table loaded"
	LogMsgGlobeInitialized = "Globe service initialized"

	ErrMsgLoadAliases    = "failed to load country aliases"
	ErrMsgLoadContinents = "failed to load continent color table"
	ErrMsgRegisterFlags  = "failed to register flag metrics"
)

// =============================================================================
// Persistence
// =============================================================================

const (
	LogMsgPersistenceDisabled = "DATABASE_URL not set, snapshot persistence disabled"
	LogMsgPersistenceEnabled  = "Snapshot persistence enabled"
	LogMsgWarmStartFailed     = "Warm start failed, continuing with empty caches"
	LogMsgWarmStartDone       = "Warm start complete"

	ErrMsgConnectDatabase = "failed to connect to database"
	ErrMsgMigrateDatabase = "failed to migrate database"
)

// =============================================================================
// Event handlers and background jobs
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgEventLoggerSubscribed      = "Event logger subscribed"
	LogMsgSnapshotPersistSubscribed  = "Snapshot persist subscribed"
	LogMsgRefreshScheduled           = "Background reference refresh scheduled"
	LogMsgRefreshDisabled            = "Background reference refresh disabled"
	LogMsgCleanupScheduled           = "Event log cleanup scheduled"

	ErrMsgFailedRegisterMetrics = "failed to register metrics collector"

	JobNameReferenceRefresh = "reference-refresh"
	JobNameEventLogCleanup  = "eventlog-cleanup"

	EventLogCleanupInterval = 24 * time.Hour
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingScheduler    = "Stopping scheduler"
	LogMsgStoppingWorkers      = "Stopping worker pool"
	LogMsgFinalPersist         = "Persisting snapshot before exit"
	LogMsgFinalPersistFailed   = "Final snapshot persist failed"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgServerStopped        = "Server stopped"
)
