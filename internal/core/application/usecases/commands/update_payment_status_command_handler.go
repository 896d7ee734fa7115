package commands

import (
	"context"

	"commerce/internal/core/domain/model/payment"
)

// UpdatePaymentStatusCommandHandler sets a payment's status.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment status
// changes.
func NewUpdatePaymentStatusCommandHandler(uowFactory PaymentUoWFactory) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the payment's status and returns the payment.
func (h *UpdatePaymentStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdatePaymentStatusCommand,
) (*payment.Payment, error) {
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

	paymentRepo := uow.PaymentRepository()
	p, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return nil, err
	}

	if err = p.SetStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
