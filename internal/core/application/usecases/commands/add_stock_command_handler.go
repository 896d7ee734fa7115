package commands

import (
	"context"

	"commerce/internal/core/domain/model/product"
)

// AddStockCommandHandler receives stock for a product. The product row is
// locked for the increment so concurrent debits cannot interleave with it.
type AddStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAddStockCommandHandler creates a handler for stock receipt.
func NewAddStockCommandHandler(uowFactory InventoryUoWFactory) AddStockCommandHandler {
	return AddStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the quantity to the product's stock and returns the product.
func (h *AddStockCommandHandler) Handle(
	ctx context.Context, cmd AddStockCommand,
) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	p, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = p.AddStock(cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
