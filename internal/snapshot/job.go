package snapshot

import (
	"context"

	"github.com/osse101/GlobePalette_Go/internal/logger"
)

// PersistJob saves the caches as a worker job
type PersistJob struct {
	service Service
}

// NewPersistJob creates a persist job
func NewPersistJob(service Service) *PersistJob {
	return &PersistJob{service: service}
}

// Process executes the persist
func (j *PersistJob) Process(ctx context.Context) error {
	if err := j.service.Persist(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistJobFailed, "error", err)
		return err
	}
	return nil
}
