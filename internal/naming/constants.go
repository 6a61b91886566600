package naming

// SchemaCountryAliases is the schema identifier expected in the aliases config file.
const SchemaCountryAliases = "country-aliases"

// Error context messages for wrapped errors during configuration loading
const (
	ErrContextFailedToLoadAliases = "failed to load aliases"
	ErrContextFailedToParseConfig = "failed to parse config %s"
	ErrContextFailedToDecodeData  = "failed to decode data for %s"
	ErrContextSchemaValidation    = "aliases config %s failed schema validation"
)

// Configuration validation error messages
const (
	ErrMsgMissingVersionField = "%s missing version field"
	ErrMsgInvalidSchema       = "invalid schema in %s: expected '%s', got '%s'"
	ErrMsgEmptyOverride       = "%s: override %q maps to an empty name"
)
