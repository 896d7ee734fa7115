package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	stock       int
	supplierID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product. Field
// rules live on the aggregate; the command only pins its own identity.
func NewCreateProductCommand(
	productID kernel.UUID,
	name, description string,
	price decimal.Decimal,
	stock int,
	supplierID *kernel.UUID,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		supplierID:  supplierID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identity assigned to the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// Stock returns the initial stock level.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

// SupplierID returns the optional supplier reference.
func (c CreateProductCommand) SupplierID() *kernel.UUID {
	return c.supplierID
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
