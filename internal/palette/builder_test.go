package palette

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GlobePalette_Go/internal/colormath"
	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/flag"
)

type stubExtractor struct {
	result flag.Result
	refs   []string
	seen   []colormath.RGB
}

func (s *stubExtractor) Extract(ctx context.Context, ref string, fallback colormath.RGB) flag.Result {
	s.refs = append(s.refs, ref)
	s.seen = append(s.seen, fallback)
	if s.result.Fallback {
		return flag.Result{Primary: fallback, Fallback: true}
	}
	return s.result
}

func TestBuild_FromFlag(t *testing.T) {
	primary := colormath.RGB{R: 16, G: 80, B: 176}
	secondary := colormath.RGB{R: 240, G: 80, B: 48}
	ext := &stubExtractor{result: flag.Result{Primary: primary, Secondary: &secondary}}
	b := NewBuilder(ext, nil)

	got := b.Build(context.Background(), domain.Country{Name: "France", Continent: Europe, FlagURL: "fr.png"}, Options{})

	base := DefaultTable().Continents[Europe]
	assert.Equal(t, base, got.Base)
	assert.Equal(t, primary, got.Accent)
	assert.Equal(t, colormath.Lighten(primary, 0.18), got.AccentLight)
	assert.Equal(t, colormath.Darken(primary, 0.18), got.AccentDark)
	assert.Equal(t, colormath.Mix(base, primary, 0.35), got.Muted)
	assert.Equal(t, &secondary, got.Secondary)
	assert.True(t, got.FromFlag)
	assert.Equal(t, []string{"fr.png"}, ext.refs)
}

func TestBuild_Overrides(t *testing.T) {
	ext := &stubExtractor{result: flag.Result{Fallback: true}}
	b := NewBuilder(ext, nil)

	base := colormath.RGB{R: 10, G: 20, B: 30}
	accent := colormath.RGB{R: 200, G: 100, B: 0}
	got := b.Build(context.Background(), domain.Country{Continent: Asia}, Options{BaseColor: &base, FallbackAccent: &accent})

	assert.Equal(t, base, got.Base)
	assert.Equal(t, accent, got.Accent)
	assert.Nil(t, got.Secondary)
	assert.False(t, got.FromFlag)
	assert.Equal(t, []colormath.RGB{accent}, ext.seen)
}

func TestBuild_UnknownContinentAndDefaultAccent(t *testing.T) {
	b := NewBuilder(&stubExtractor{result: flag.Result{Fallback: true}}, nil)

	got := b.Build(context.Background(), domain.Country{Name: "Atlantis"}, Options{})
	assert.Equal(t, DefaultTable().DefaultBase, got.Base)
	assert.Equal(t, DefaultTable().DefaultAccent, got.Accent)

	noExtractor := NewBuilder(nil, nil).Build(context.Background(), domain.Country{Continent: Africa}, Options{})
	assert.Equal(t, DefaultTable().DefaultAccent, noExtractor.Accent)
	assert.Equal(t, DefaultTable().Continents[Africa], noExtractor.Base)
}

func TestTable_BaseCaseInsensitive(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, table.Continents[SouthAmerica], table.Base("south america"))
	assert.Equal(t, table.Continents[Oceania], table.Base(" Oceania "))
	assert.Equal(t, table.DefaultBase, table.Base(""))
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "continents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: "2"
schema: continent-colors
default_accent: "#112233"
continents:
  Europe: "#010203"
  Zealandia: "#0A0B0C"
`), 0644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "2", table.Version)
	assert.Equal(t, colormath.RGB{R: 1, G: 2, B: 3}, table.Base(Europe))
	assert.Equal(t, colormath.RGB{R: 10, G: 11, B: 12}, table.Base("zealandia"))
	assert.Equal(t, DefaultTable().Continents[Asia], table.Base(Asia), "unlisted continents keep built-ins")
	assert.Equal(t, colormath.RGB{R: 0x11, G: 0x22, B: 0x33}, table.DefaultAccent)
	assert.Equal(t, DefaultTable().DefaultBase, table.DefaultBase)
}

func TestLoadTable_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "continents: [", "failed to parse"},
		{"bad color", "version: \"1\"\nschema: continent-colors\ncontinents:\n  Europe: blue\n", "failed to parse"},
		{"missing version", "schema: continent-colors\ncontinents:\n  Europe: \"#000000\"\n", "missing version"},
		{"wrong schema", "version: \"1\"\nschema: nope\ncontinents:\n  Europe: \"#000000\"\n", "invalid schema"},
		{"no colors", "version: \"1\"\nschema: continent-colors\n", "no continent colors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := LoadTable(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadTable_MissingAndRepositoryFile(t *testing.T) {
	table, err := LoadTable(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTable(), table)

	table, err = LoadTable("../../configs/palette/continents.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultTable().Continents, table.Continents)
}
