package palette

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/GlobePalette_Go/internal/colormath"
)

// Continent names as they appear in the reference data.
const (
	Africa       = "Africa"
	Antarctica   = "Antarctica"
	Asia         = "Asia"
	Europe       = "Europe"
	NorthAmerica = "North America"
	Oceania      = "Oceania"
	SouthAmerica = "South America"
)

// Table maps continents to base colors, with defaults for unknown continents
// and for flags that yield no accent.
type Table struct {
	Version       string                   `json:"version"`
	Schema        string                   `json:"schema"`
	DefaultBase   colormath.RGB            `json:"default_base"`
	DefaultAccent colormath.RGB            `json:"default_accent"`
	Continents    map[string]colormath.RGB `json:"continents"`
}

// tableFile is the YAML shape; absent defaults keep the built-in values.
type tableFile struct {
	Version       string                   `yaml:"version"`
	Schema        string                   `yaml:"schema"`
	DefaultBase   *colormath.RGB           `yaml:"default_base"`
	DefaultAccent *colormath.RGB           `yaml:"default_accent"`
	Continents    map[string]colormath.RGB `yaml:"continents"`
}

// DefaultTable returns the built-in continent colors.
func DefaultTable() *Table {
	return &Table{
		Version:       "1.0",
		Schema:        SchemaContinentColors,
		DefaultBase:   colormath.MustHex("#B8BEC6"),
		DefaultAccent: colormath.MustHex("#4A6FA5"),
		Continents: map[string]colormath.RGB{
			Africa:       colormath.MustHex("#E0B96A"),
			Antarctica:   colormath.MustHex("#DDE6EE"),
			Asia:         colormath.MustHex("#E58E73"),
			Europe:       colormath.MustHex("#7FA7D9"),
			NorthAmerica: colormath.MustHex("#8CC08A"),
			Oceania:      colormath.MustHex("#6CC3C1"),
			SouthAmerica: colormath.MustHex("#B7A0D6"),
		},
	}
}

// Base returns the color for continent, case-insensitively, or DefaultBase.
func (t *Table) Base(continent string) colormath.RGB {
	continent = strings.TrimSpace(continent)
	if c, ok := t.Continents[continent]; ok {
		return c
	}
	for name, c := range t.Continents {
		if strings.EqualFold(name, continent) {
			return c
		}
	}
	return t.DefaultBase
}

// LoadTable reads a continent table from YAML. Continents missing from the
// file keep their built-in colors. A missing file yields DefaultTable.
func LoadTable(path string) (*Table, error) {
	table := DefaultTable()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug(LogMsgTableMissing, "path", path)
			return table, nil
		}
		return nil, fmt.Errorf(ErrMsgReadTable+": %w", path, err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTable+": %w", path, err)
	}
	if file.Version == "" {
		return nil, fmt.Errorf(ErrMsgTableVersion, path)
	}
	if file.Schema != SchemaContinentColors {
		return nil, fmt.Errorf(ErrMsgTableSchema, path, SchemaContinentColors, file.Schema)
	}
	if len(file.Continents) == 0 {
		return nil, fmt.Errorf(ErrMsgTableNoColors, path)
	}

	table.Version = file.Version
	for name, c := range file.Continents {
		table.Continents[name] = c
	}
	if file.DefaultBase != nil {
		table.DefaultBase = *file.DefaultBase
	}
	if file.DefaultAccent != nil {
		table.DefaultAccent = *file.DefaultAccent
	}

	slog.Info(LogMsgTableLoaded, "path", path, "continents", len(table.Continents))
	return table, nil
}
