package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/delivery"
)

// UpdateDeliveryStatusCommandHandler changes a delivery's workflow status.
// When the delivery newly reaches Delivered the stock debit and order stamp
// run in the same transaction; a delivery already Delivered is left alone,
// so repeating the update never debits stock twice.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	logger     *slog.Logger
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// status changes.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory, logger *slog.Logger,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle moves the delivery to the requested status and returns it.
func (h *UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateDeliveryStatusCommand,
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

	wasDelivered := d.IsDelivered()
	if err = d.SetStatus(cmd.Status()); err != nil {
		return nil, err
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
