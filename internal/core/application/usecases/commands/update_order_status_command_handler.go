package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/order"
)

// StatusHook runs inside the status-change transaction after the transition
// has been applied to the aggregate but before it is persisted. Returning an
// error aborts the whole transaction.
type StatusHook func(ctx context.Context, o *order.Order) error

// UpdateOrderStatusCommandHandlerOption customizes handler construction.
type UpdateOrderStatusCommandHandlerOption func(*UpdateOrderStatusCommandHandler)

// WithValidatedHook replaces the step executed when an order reaches
// Validated. The default step only logs; payment verification plugs in here.
func WithValidatedHook(hook StatusHook) UpdateOrderStatusCommandHandlerOption {
	return func(h *UpdateOrderStatusCommandHandler) {
		h.onValidated = hook
	}
}

// WithCancelledHook replaces the step executed when an order reaches
// Cancelled. The default step only logs; stock release plugs in here.
func WithCancelledHook(hook StatusHook) UpdateOrderStatusCommandHandlerOption {
	return func(h *UpdateOrderStatusCommandHandler) {
		h.onCancelled = hook
	}
}

// UpdateOrderStatusCommandHandler applies order lifecycle transitions.
// Entering Validated or Cancelled triggers a dedicated hook; both hooks are
// placeholders that do nothing beyond logging, but they run inside the same
// transaction as the status write so replacements inherit its atomicity.
type UpdateOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	logger      *slog.Logger
	onValidated StatusHook
	onCancelled StatusHook
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// changes. Hooks default to log-only placeholders.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
	opts ...UpdateOrderStatusCommandHandlerOption,
) UpdateOrderStatusCommandHandler {
	h := UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
	h.onValidated = func(ctx context.Context, o *order.Order) error {
		h.logger.DebugContext(ctx, "order validated", "order_id", o.ID().String())
		return nil
	}
	h.onCancelled = func(ctx context.Context, o *order.Order) error {
		h.logger.DebugContext(ctx, "order cancelled", "order_id", o.ID().String())
		return nil
	}

	for _, opt := range opts {
		opt(&h)
	}

	return h
}

// Handle moves the order to the requested status.
// Returns the updated order, or an InvalidTransitionError when the order's
// current status does not allow the move.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.UpdateStatus(cmd.Status()); err != nil {
		return nil, err
	}

	switch cmd.Status() {
	case order.Validated:
		err = h.onValidated(ctx, o)
	case order.Cancelled:
		err = h.onCancelled(ctx, o)
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
