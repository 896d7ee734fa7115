package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrAddStockCommandIsNotConstructed = errors.New(
	"AddStockCommand must be created via NewAddStockCommand constructor",
)

// AddStockCommand represents a request to receive stock for a product.
type AddStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddStockCommand creates a command to add stock.
// The quantity must be positive.
func NewAddStockCommand(productID kernel.UUID, quantity int) (AddStockCommand, error) {
	cmd := AddStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStockCommand) Validate() error {
	return c.guard.Validate(ErrAddStockCommandIsNotConstructed)
}

// ProductID returns the identity of the product to restock.
func (c AddStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddStockCommand) Quantity() int {
	return c.quantity
}

func (c *AddStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
