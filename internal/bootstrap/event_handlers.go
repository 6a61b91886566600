package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/GlobePalette_Go/internal/event"
	"github.com/osse101/GlobePalette_Go/internal/eventlog"
	"github.com/osse101/GlobePalette_Go/internal/metrics"
	"github.com/osse101/GlobePalette_Go/internal/snapshot"
	"github.com/osse101/GlobePalette_Go/internal/sse"
	"github.com/osse101/GlobePalette_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler
// registration. EventLogService and SnapshotService are nil when
// persistence is disabled.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	Hub             *sse.Hub
	EventLogService eventlog.Service
	SnapshotService snapshot.Service
	Pool            *worker.Pool
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// - Metrics collector (fetch and enrichment counters)
// - SSE subscriber (relays progress to streaming clients)
// - Event logger (persists audited events)
// - Snapshot persist (queues a save after each refresh)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	if deps.EventLogService != nil {
		deps.EventLogService.Subscribe(deps.EventBus)
		slog.Info(LogMsgEventLoggerSubscribed)
	}

	if deps.SnapshotService != nil && deps.Pool != nil {
		deps.SnapshotService.Subscribe(deps.EventBus, deps.Pool.TryEnqueue)
		slog.Info(LogMsgSnapshotPersistSubscribed)
	}

	return nil
}
