package palette

import (
	"context"

	"github.com/osse101/GlobePalette_Go/internal/colormath"
	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/flag"
)

// FlagExtractor is the part of flag.Extractor the builder needs.
type FlagExtractor interface {
	Extract(ctx context.Context, ref string, fallback colormath.RGB) flag.Result
}

// Options overrides the table defaults for one Build call.
type Options struct {
	BaseColor      *colormath.RGB `json:"base_color,omitempty"`
	FallbackAccent *colormath.RGB `json:"fallback_accent,omitempty"`
}

// Display is the full set of colors used to render one country.
type Display struct {
	Base        colormath.RGB  `json:"base"`
	Accent      colormath.RGB  `json:"accent"`
	AccentLight colormath.RGB  `json:"accent_light"`
	AccentDark  colormath.RGB  `json:"accent_dark"`
	Muted       colormath.RGB  `json:"muted"`
	Secondary   *colormath.RGB `json:"secondary,omitempty"`
	// FromFlag is false when Accent is a fallback rather than a flag color.
	FromFlag bool `json:"from_flag"`
}

// Builder composes display palettes. It holds no per-country state; every
// flag lookup goes through the extractor's cache.
type Builder struct {
	extractor FlagExtractor
	table     *Table
}

// NewBuilder creates a builder. A nil table uses DefaultTable.
func NewBuilder(extractor FlagExtractor, table *Table) *Builder {
	if table == nil {
		table = DefaultTable()
	}
	return &Builder{extractor: extractor, table: table}
}

// Table returns the continent table in use.
func (b *Builder) Table() *Table {
	return b.table
}

// Build derives the palette for country.
func (b *Builder) Build(ctx context.Context, country domain.Country, opts Options) Display {
	base := b.table.Base(country.Continent)
	if opts.BaseColor != nil {
		base = *opts.BaseColor
	}

	fallback := b.table.DefaultAccent
	if opts.FallbackAccent != nil {
		fallback = *opts.FallbackAccent
	}

	res := flag.Result{Primary: fallback, Fallback: true}
	if b.extractor != nil {
		res = b.extractor.Extract(ctx, country.FlagURL, fallback)
	}

	accent := res.Primary
	return Display{
		Base:        base,
		Accent:      accent,
		AccentLight: colormath.Lighten(accent, AccentLightAmount),
		AccentDark:  colormath.Darken(accent, AccentDarkAmount),
		Muted:       colormath.Mix(base, accent, MutedMixRatio),
		Secondary:   res.Secondary,
		FromFlag:    !res.Fallback,
	}
}
