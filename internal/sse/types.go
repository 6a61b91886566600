package sse

import "github.com/osse101/GlobePalette_Go/internal/domain"

// ProgressPayload is the SSE payload for one finished enrichment slice
type ProgressPayload struct {
	RunID  string                `json:"run_id"`
	Slice  int                   `json:"slice"`
	Slices int                   `json:"slices"`
	Done   int                   `json:"done"`
	Total  int                   `json:"total"`
	Colors []domain.FeatureColor `json:"colors"`
}

// CompletedPayload is the SSE payload for the end of an enrichment run
type CompletedPayload struct {
	RunID      string `json:"run_id"`
	Total      int    `json:"total"`
	Done       int    `json:"done"`
	Fallbacks  int    `json:"fallbacks"`
	Cancelled  bool   `json:"cancelled"`
	DurationMs int64  `json:"duration_ms"`
}

// ReferencePayload reports a reference set reload or failure
type ReferencePayload struct {
	Records  int    `json:"records,omitempty"`
	Attempts int    `json:"attempts"`
	HasStale bool   `json:"has_stale,omitempty"`
	Error    string `json:"error,omitempty"`
}
