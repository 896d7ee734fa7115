package jobs

import (
	"fmt"
	"log/slog"

	"commerce/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	deliveryDelayJob *DeliveryDelayJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	flagDelayedHandler commands.FlagDelayedDeliveriesCommandHandler,
	delaySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryDelayJob: NewDeliveryDelayJob(flagDelayedHandler, delaySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryDelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery delay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryDelayJob.Stop()
}
