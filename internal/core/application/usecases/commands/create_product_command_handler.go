package commands

import (
	"context"

	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

// CreateProductCommandHandler registers new catalog products. A supplied
// supplier reference must resolve to a stored supplier.
type CreateProductCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory InventoryUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the product and returns it.
func (h *CreateProductCommandHandler) Handle(
	ctx context.Context, cmd CreateProductCommand,
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

	if cmd.SupplierID() != nil {
		exists, err := uow.SupplierRepository().Exists(ctx, *cmd.SupplierID())
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewObjectNotFoundError("supplier", *cmd.SupplierID())
		}
	}

	p, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Stock(),
		cmd.SupplierID(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
