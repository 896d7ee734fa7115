package commands

import (
	"context"

	"commerce/internal/core/domain/model/payment"
)

// ProcessPaymentCommandHandler settles payments by stamping them Completed.
type ProcessPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewProcessPaymentCommandHandler creates a handler for payment settlement.
func NewProcessPaymentCommandHandler(uowFactory PaymentUoWFactory) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle settles the payment and returns it.
func (h *ProcessPaymentCommandHandler) Handle(
	ctx context.Context, cmd ProcessPaymentCommand,
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

	p.Process()

	if err = paymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
