package bootstrap

import (
	"log/slog"

	"github.com/osse101/GlobePalette_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus. Handlers run
// synchronously on the publisher's goroutine, so subscribers that do I/O
// hand work to the worker pool instead of blocking the bus.
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}
