package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Resolution errors
	ErrMsgCountryNotFound = "country not found"

	// Upstream errors
	ErrMsgUpstreamUnavailable = "reference data unavailable"

	// Color errors
	ErrMsgInvalidColor = "invalid color"

	// Enrichment errors
	ErrMsgInvalidFeature = "invalid feature"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrCountryNotFound is returned by API layers when a lookup misses.
	// The matcher itself reports misses as (zero, false), never as an error.
	ErrCountryNotFound = errors.New(ErrMsgCountryNotFound)

	// ErrUpstreamUnavailable is returned when the reference set could not be
	// fetched after all retries and no snapshot exists.
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)

	// Color errors
	ErrInvalidColor = errors.New(ErrMsgInvalidColor)

	// Enrichment errors
	ErrInvalidFeature = errors.New(ErrMsgInvalidFeature)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
