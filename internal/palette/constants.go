package palette

// Derivation amounts
const (
	AccentLightAmount = 0.18
	AccentDarkAmount  = 0.18
	MutedMixRatio     = 0.35
)

// SchemaContinentColors is the schema identifier expected in the continents file.
const SchemaContinentColors = "continent-colors"

// Log messages
const (
	LogMsgTableLoaded  = "Continent color table loaded"
	LogMsgTableMissing = "Continent color file not found, using built-in table"
)

// Error messages
const (
	ErrMsgReadTable     = "failed to read continent table %s"
	ErrMsgParseTable    = "failed to parse continent table %s"
	ErrMsgTableVersion  = "%s missing version field"
	ErrMsgTableSchema   = "invalid schema in %s: expected '%s', got '%s'"
	ErrMsgTableNoColors = "%s defines no continent colors"
)
