package commands

import (
	"context"

	"commerce/internal/core/domain/model/payment"
	"commerce/internal/pkg/errs"
)

// RecordPaymentCommandHandler records payments. The paid order must exist
// and carries at most one payment record.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the payment and returns it.
func (h *RecordPaymentCommandHandler) Handle(
	ctx context.Context, cmd RecordPaymentCommand,
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	paymentRepo := uow.PaymentRepository()
	taken, err := paymentRepo.ExistsForOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewValueIsInvalidError("order already has a payment")
	}

	p, err := payment.NewPayment(
		cmd.PaymentID(),
		cmd.OrderID(),
		cmd.OccurredAt(),
		cmd.Amount(),
		cmd.Method(),
		cmd.Status(),
	)
	if err != nil {
		return nil, err
	}

	if err = paymentRepo.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
