package postgres

// Log messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
)

// Error messages
const (
	ErrMsgMarshalRecords   = "failed to marshal reference records"
	ErrMsgUnmarshalRecords = "failed to unmarshal reference records"
	ErrMsgQuerySnapshot    = "failed to query reference snapshot"
	ErrMsgUpsertSnapshot   = "failed to upsert reference snapshot"
	ErrMsgUpsertFlags      = "failed to upsert flag results"
	ErrMsgQueryFlags       = "failed to query flag results"
	ErrMsgInvalidColumn    = "invalid color in flag_results"
)
