package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"
)

// PlaceOrderCommandHandler runs the order admission pipeline. Checks stop at
// the first violation, in a fixed sequence: the client must exist, at least
// one line must be present, every line must reference an existing product
// with a positive quantity and price, and aggregated quantities must fit the
// current stock. Stock is only read here; nothing is reserved, so two
// concurrent admissions can both pass the check against the same units.
type PlaceOrderCommandHandler struct {
	uowFactory   AdmissionUoWFactory
	stockChecker services.StockChecker
}

// NewPlaceOrderCommandHandler creates a handler for order admission.
func NewPlaceOrderCommandHandler(uowFactory AdmissionUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:   uowFactory,
		stockChecker: services.NewStockChecker(),
	}
}

// Handle admits the order and persists it with status Pending.
// Returns the placed order with its derived total.
func (h *PlaceOrderCommandHandler) Handle(
	ctx context.Context, cmd PlaceOrderCommand,
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

	exists, err := uow.ClientRepository().Exists(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("client", cmd.ClientID())
	}

	if len(cmd.Lines()) == 0 {
		return nil, order.ErrOrderHasNoLines
	}

	productRepo := uow.ProductRepository()
	lines := make([]*order.Line, 0, len(cmd.Lines()))
	products := make(map[kernel.UUID]*product.Product, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		if err = input.ProductID.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredError("product")
		}

		if _, ok := products[input.ProductID]; !ok {
			p, getErr := productRepo.Get(ctx, input.ProductID)
			if getErr != nil {
				return nil, getErr
			}
			products[input.ProductID] = p
		}

		line, lineErr := order.NewLine(kernel.NewUUID(), input.ProductID, input.Quantity, input.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	if err = h.stockChecker.EnsureAvailable(lines, products); err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.ClientID(), time.Now(), lines)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
