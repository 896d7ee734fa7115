package jobs

import (
	"context"
	"log/slog"
	"time"

	"commerce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryDelayJob periodically sweeps the delivery workflow for
// deliveries whose scheduled date has passed and marks them Delayed.
type DeliveryDelayJob struct {
	handler  commands.FlagDelayedDeliveriesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryDelayJob creates a new job for flagging overdue deliveries.
// The schedule is a standard five-field cron expression.
func NewDeliveryDelayJob(
	handler commands.FlagDelayedDeliveriesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DeliveryDelayJob {
	return &DeliveryDelayJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "delivery_delay_job"),
	}
}

// Start begins the delay sweep on the configured schedule.
func (j *DeliveryDelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewFlagDelayedDeliveriesCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delivery delay job failed to build command", "error", cmdErr)
			return
		}

		flagged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Delivery delay job failed", "error", handleErr)
			return
		}

		if flagged > 0 {
			j.logger.InfoContext(ctx, "Delivery delay sweep flagged deliveries", "count", flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery delay job started", "schedule", j.schedule)
	return nil
}

// Stop stops the delay sweep.
func (j *DeliveryDelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery delay job stopped")
}
