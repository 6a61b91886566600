package naming

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/osse101/GlobePalette_Go/internal/validation"
)

// AliasConfig is the on-disk shape of the aliases file.
type AliasConfig struct {
	Version   string            `json:"version"`
	Schema    string            `json:"schema"`
	Overrides map[string]string `json:"overrides"`
}

// LoadOverrides reads extra override entries from a versioned JSON file. A
// missing file is not an error and yields no entries. When schemaPath is set
// the document is validated against it before decoding.
func LoadOverrides(path, schemaPath string, v validation.SchemaValidator) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadAliases, err)
	}

	if schemaPath != "" && v != nil {
		if err := v.ValidateBytes(data, schemaPath); err != nil {
			return nil, fmt.Errorf(ErrContextSchemaValidation+": %w", path, err)
		}
	}

	var cfg AliasConfig
	if err := decodeVersioned(path, data, SchemaCountryAliases, &cfg); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(cfg.Overrides))
	for key, target := range cfg.Overrides {
		if strings.TrimSpace(target) == "" {
			return nil, fmt.Errorf(ErrMsgEmptyOverride, path, key)
		}
		out[key] = target
	}
	return out, nil
}

func decodeVersioned(path string, data []byte, schema string, target any) error {
	var wrapper struct {
		Version string `json:"version"`
		Schema  string `json:"schema"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf(ErrContextFailedToParseConfig+": %w", path, err)
	}

	if wrapper.Version == "" {
		return fmt.Errorf(ErrMsgMissingVersionField, path)
	}
	if wrapper.Schema != schema {
		return fmt.Errorf(ErrMsgInvalidSchema, path, schema, wrapper.Schema)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf(ErrContextFailedToDecodeData+": %w", path, err)
	}
	return nil
}
