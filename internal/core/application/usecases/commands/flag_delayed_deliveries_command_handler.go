package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/delivery"
)

// FlagDelayedDeliveriesCommandHandler marks overdue deliveries Delayed.
// A delivery is overdue when it is still Pending or EnRoute past its
// scheduled date. All updates occur within a single transaction.
//
// This would typically be called periodically by a scheduler.
type FlagDelayedDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	logger     *slog.Logger
}

// NewFlagDelayedDeliveriesCommandHandler creates a handler for the overdue
// delivery sweep.
func NewFlagDelayedDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory, logger *slog.Logger,
) FlagDelayedDeliveriesCommandHandler {
	return FlagDelayedDeliveriesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle flags every overdue delivery and returns how many were flagged.
func (h *FlagDelayedDeliveriesCommandHandler) Handle(
	ctx context.Context, cmd FlagDelayedDeliveriesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	overdue, err := deliveryRepo.GetOverdue(ctx, cmd.AsOf())
	if err != nil {
		return 0, err
	}

	for _, d := range overdue {
		if err = d.SetStatus(delivery.Delayed); err != nil {
			return 0, err
		}
		if err = deliveryRepo.Update(ctx, d); err != nil {
			return 0, err
		}

		h.logger.InfoContext(ctx, "delivery flagged as delayed",
			"delivery_id", d.ID().String(),
			"order_id", d.OrderID().String(),
		)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(overdue), nil
}
