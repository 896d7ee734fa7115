// Package product contains the Product aggregate, owner of the per-product
// stock counter. Stock is mutated only through ReduceStock and AddStock so
// the non-negative invariant holds everywhere.
package product

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is the aggregate root for catalog items and their stock count.
//
// Invariants:
//   - Name is non-empty
//   - Price is strictly positive
//   - Stock is never negative; debits that would undershoot fail with
//     InsufficientStockError
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	stock       int
	supplierID  *kernel.UUID

	isConstructed bool
}

// NewProduct creates a validated Product. SupplierID is optional; when set it
// must be a constructed UUID.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	stock int,
	supplierID *kernel.UUID,
) (*Product, error) {
	p := &Product{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
		p.setSupplierID(supplierID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a Product from persistence. The same invariants
// apply as in NewProduct.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	stock int,
	supplierID *kernel.UUID,
) (*Product, error) {
	return NewProduct(id, name, description, price, stock, supplierID)
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-text product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current catalog price. Order lines snapshot their own
// unit price, so later price changes never affect admitted orders.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Stock returns the current stock count.
func (p *Product) Stock() int {
	return p.stock
}

// Supplier returns the referenced supplier's ID, or nil when unset.
func (p *Product) Supplier() *kernel.UUID {
	return p.supplierID
}

// HasStock reports whether the current stock covers the requested quantity.
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.stock >= quantity
}

// ReduceStock debits the stock counter. It fails with InsufficientStockError
// when the current stock cannot cover the quantity, leaving the counter
// unchanged. Quantity must be positive.
func (p *Product) ReduceStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.stock < quantity {
		return errs.NewInsufficientStockError(p.name)
	}

	p.stock -= quantity
	return nil
}

// AddStock credits the stock counter. Quantity must be positive.
func (p *Product) AddStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}

func (p *Product) setSupplierID(supplierID *kernel.UUID) error {
	if supplierID == nil {
		return nil
	}
	if err := supplierID.Validate(); err != nil {
		return err
	}
	p.supplierID = supplierID
	return nil
}
