package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/order"
)

// completeDelivery runs the delivery-completion side effect inside the
// caller's transaction: every line of the owning order is debited from stock
// under a row lock, then the order is stamped Delivered regardless of its
// current status. Callers must only invoke this when the delivery newly
// reaches Delivered, so a repeated status update never debits twice.
func completeDelivery(
	ctx context.Context,
	uow DeliveryUoW,
	logger *slog.Logger,
	d *delivery.Delivery,
) error {
	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, d.OrderID())
	if err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, line := range o.Lines() {
		p, getErr := productRepo.GetForUpdate(ctx, line.ProductID())
		if getErr != nil {
			return getErr
		}
		if err = p.ReduceStock(line.Quantity()); err != nil {
			return err
		}
		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	prev := o.ForceDeliver()
	if prev != order.Shipped && prev != order.Delivered {
		logger.WarnContext(ctx, "order stamped delivered outside its lifecycle",
			"order_id", o.ID().String(),
			"previous_status", prev.String(),
		)
	}

	return orderRepo.Update(ctx, o)
}
