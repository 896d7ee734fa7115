package commands

import (
	"context"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/pkg/errs"
)

// AssignTransporterCommandHandler assigns a transporter to a delivery.
// When either identity does not resolve the handler reports not-found and
// changes nothing.
type AssignTransporterCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignTransporterCommandHandler creates a handler for transporter
// assignment.
func NewAssignTransporterCommandHandler(uowFactory DeliveryUoWFactory) AssignTransporterCommandHandler {
	return AssignTransporterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the transporter and returns the updated delivery.
func (h *AssignTransporterCommandHandler) Handle(
	ctx context.Context, cmd AssignTransporterCommand,
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

	exists, err := uow.TransporterRepository().Exists(ctx, cmd.TransporterID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("transporter", cmd.TransporterID())
	}

	if err = d.AssignTransporter(cmd.TransporterID()); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
