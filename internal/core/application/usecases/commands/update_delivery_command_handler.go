package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/pkg/errs"
)

// UpdateDeliveryCommandHandler applies partial updates to a delivery.
// Supplied fields overwrite stored values; the transporter assignment is
// always rewritten, so leaving it out of the request clears it. A status
// update that newly reaches Delivered triggers the completion side effect.
type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	logger     *slog.Logger
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery updates.
func NewUpdateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory, logger *slog.Logger,
) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle updates the delivery and returns it.
func (h *UpdateDeliveryCommandHandler) Handle( //nolint:cyclop //field-by-field merge
	ctx context.Context, cmd UpdateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if cmd.OrderID() != nil {
		if _, err = uow.OrderRepository().Get(ctx, *cmd.OrderID()); err != nil {
			return nil, err
		}
		if err = d.AttachOrder(*cmd.OrderID()); err != nil {
			return nil, err
		}
	}

	if cmd.TransporterID() != nil {
		exists, existsErr := uow.TransporterRepository().Exists(ctx, *cmd.TransporterID())
		if existsErr != nil {
			return nil, existsErr
		}
		if !exists {
			return nil, errs.NewObjectNotFoundError("transporter", *cmd.TransporterID())
		}
		if err = d.AssignTransporter(*cmd.TransporterID()); err != nil {
			return nil, err
		}
	} else {
		d.ClearTransporter()
	}

	if cmd.ScheduledAt() != nil {
		d.Reschedule(*cmd.ScheduledAt())
	}
	if cmd.Address() != nil {
		if err = d.SetAddress(*cmd.Address()); err != nil {
			return nil, err
		}
	}
	if cmd.Cost() != nil {
		if err = d.SetCost(*cmd.Cost()); err != nil {
			return nil, err
		}
	}

	wasDelivered := d.IsDelivered()
	if cmd.Status() != nil {
		if err = d.SetStatus(*cmd.Status()); err != nil {
			return nil, err
		}
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if d.IsDelivered() && !wasDelivered {
		if err = completeDelivery(ctx, uow, h.logger, d); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
