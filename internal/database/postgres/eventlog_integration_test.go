package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GlobePalette_Go/internal/eventlog"
)

func TestEventLogRepository(t *testing.T) {
	repo := NewEventLogRepository(requirePool(t))
	ctx := context.Background()

	runID := "run-1"
	require.NoError(t, repo.LogEvent(ctx, "enrichment.completed", &runID,
		map[string]interface{}{"run_id": runID, "total": 12}, map[string]interface{}{"run_id": runID}))
	require.NoError(t, repo.LogEvent(ctx, "reference.invalidated", nil, nil, map[string]interface{}{"source": "admin"}))

	all, err := repo.GetEvents(ctx, eventlog.EventFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "reference.invalidated", all[0].EventType, "newest first")
	assert.Equal(t, map[string]interface{}{}, all[0].Payload)

	byRun, err := repo.GetEvents(ctx, eventlog.EventFilter{RunID: &runID})
	require.NoError(t, err)
	require.Len(t, byRun, 1)
	assert.Equal(t, float64(12), byRun[0].Payload["total"])

	eventType := "reference.refreshed"
	none, err := repo.GetEvents(ctx, eventlog.EventFilter{EventType: &eventType})
	require.NoError(t, err)
	assert.Empty(t, none)

	deleted, err := repo.CleanupOldEvents(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
