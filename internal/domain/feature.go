package domain

import "github.com/osse101/GlobePalette_Go/internal/colormath"

// Feature is one boundary polygon record being colored.
// Code is the identity code (ISO alpha-2 or alpha-3). BaseColor is the fixed
// fallback; only Color is written by the enrichment pipeline.
type Feature struct {
	Code      string        `json:"code" validate:"required,min=2,max=3"`
	Name      string        `json:"name,omitempty"`
	Color     colormath.RGB `json:"color"`
	BaseColor colormath.RGB `json:"base_color"`
}

// NewFeature returns a feature whose current color starts at its base color.
func NewFeature(code, name string, base colormath.RGB) *Feature {
	return &Feature{
		Code:      code,
		Name:      name,
		Color:     base,
		BaseColor: base,
	}
}

// FeatureColor is the published color of a single feature.
type FeatureColor struct {
	Code  string        `json:"code"`
	Color colormath.RGB `json:"color"`
}
