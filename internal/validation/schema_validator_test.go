package validation

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliasesSchemaPath = "configs/schemas/aliases.schema.json"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaValidator_AliasesSchema(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{
			name: "valid overrides",
			data: `{"version": "1.0", "schema": "country-aliases", "overrides": {"Holland": "Netherlands"}}`,
		},
		{
			name: "empty overrides",
			data: `{"version": "1.0", "schema": "country-aliases", "overrides": {}}`,
		},
		{
			name:     "missing overrides",
			data:     `{"version": "1.0", "schema": "country-aliases"}`,
			errorMsg: "required",
		},
		{
			name:     "wrong schema name",
			data:     `{"version": "1.0", "schema": "items", "overrides": {}}`,
			errorMsg: "/schema",
		},
		{
			name:     "empty target",
			data:     `{"version": "1.0", "schema": "country-aliases", "overrides": {"Holland": ""}}`,
			errorMsg: "/overrides/Holland",
		},
		{
			name:     "unknown top-level field",
			data:     `{"version": "1.0", "schema": "country-aliases", "overrides": {}, "extra": 1}`,
			errorMsg: "additionalProperties",
		},
		{
			name:     "invalid JSON",
			data:     `{"version": }`,
			errorMsg: "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), aliasesSchemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "test.schema.json", `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"step": {"type": "integer", "minimum": 1}
		},
		"required": ["name"]
	}`)

	t.Run("valid", func(t *testing.T) {
		dataPath := writeFile(t, dir, "ok.json", `{"name": "quantize", "step": 32}`)
		assert.NoError(t, v.ValidateFile(dataPath, schemaPath))
	})

	t.Run("constraint violation", func(t *testing.T) {
		dataPath := writeFile(t, dir, "bad.json", `{"name": "quantize", "step": 0}`)
		err := v.ValidateFile(dataPath, schemaPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "step")
	})

	t.Run("missing data file", func(t *testing.T) {
		err := v.ValidateFile(filepath.Join(dir, "nope.json"), schemaPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read data file")
	})

	t.Run("missing schema file", func(t *testing.T) {
		dataPath := writeFile(t, dir, "any.json", `{}`)
		err := v.ValidateFile(dataPath, "nonexistent.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load schema")
	})
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "test.schema.json", `{"type": "object"}`)

	require.NoError(t, v.ValidateBytes([]byte(`{"a": 1}`), schemaPath))
	require.NoError(t, v.ValidateBytes([]byte(`{"b": 2}`), schemaPath))
	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_ConcurrentUse(t *testing.T) {
	v := NewSchemaValidator()
	data := []byte(`{"version": "1.0", "schema": "country-aliases", "overrides": {"Holland": "Netherlands"}}`)

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = v.ValidateBytes(data, aliasesSchemaPath)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
