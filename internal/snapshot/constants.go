package snapshot

// Log messages
const (
	LogMsgWarmStartReference = "Warm start: loaded persisted reference set"
	LogMsgWarmStartFlags     = "Warm start: restored flag results"
	LogMsgWarmStartEmpty     = "Warm start: no persisted reference set"
	LogMsgReferenceSaved     = "Reference set persisted"
	LogMsgFlagResultsSaved   = "Flag results persisted"
	LogMsgPersistQueued      = "Snapshot persist queued"
	LogMsgPersistNotQueued   = "Snapshot persist not queued"
	LogMsgPersistJobFailed   = "Snapshot persist failed"
)

// Error messages
const (
	ErrMsgLoadReference = "failed to load reference snapshot"
	ErrMsgLoadFlags     = "failed to load flag results"
	ErrMsgSaveReference = "failed to save reference snapshot"
	ErrMsgSaveFlags     = "failed to save flag results"
)
