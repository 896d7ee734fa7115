package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/pkg/errs"
)

// CreateDeliveryCommandHandler schedules deliveries. The owning order and,
// when supplied, the transporter must exist; an order carries at most one
// delivery. Creating a delivery directly in Delivered status runs the same
// completion side effect as a later status change would.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	logger     *slog.Logger
}

// NewCreateDeliveryCommandHandler creates a handler for delivery scheduling.
func NewCreateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory, logger *slog.Logger,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle schedules the delivery and returns it.
func (h *CreateDeliveryCommandHandler) Handle(
	ctx context.Context, cmd CreateDeliveryCommand,
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	taken, err := uow.DeliveryRepository().ExistsForOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewValueIsInvalidError("order already has a delivery")
	}

	if cmd.TransporterID() != nil {
		exists, existsErr := uow.TransporterRepository().Exists(ctx, *cmd.TransporterID())
		if existsErr != nil {
			return nil, existsErr
		}
		if !exists {
			return nil, errs.NewObjectNotFoundError("transporter", *cmd.TransporterID())
		}
	}

	d, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.OrderID(),
		cmd.TransporterID(),
		cmd.ScheduledAt(),
		cmd.Address(),
		cmd.Cost(),
		cmd.Status(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if d.IsDelivered() {
		if err = completeDelivery(ctx, uow, h.logger, d); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
