package order

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// Line is a single order position. The unit price is a snapshot taken at
// order time and is independent of the product's current catalog price.
// A Line belongs to exactly one Order; the back-reference is set when the
// owning Order is constructed.
type Line struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal

	isConstructed bool
}

// NewLine creates a validated Line not yet attached to an order.
func NewLine(id, productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*Line, error) {
	l := &Line{isConstructed: true}

	if err := errors.Join(
		l.setID(id),
		l.setProductID(productID),
		l.setQuantity(quantity),
		l.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLine rebuilds a Line from persistence, including its order
// back-reference.
func RestoreLine(id, orderID, productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*Line, error) {
	l, err := NewLine(id, productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	l.orderID = orderID
	return l, nil
}

// Validate ensures the Line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// OrderID returns the owning order's identifier. It is the zero UUID until
// the line is attached to an order.
func (l *Line) OrderID() kernel.UUID {
	return l.orderID
}

// ProductID returns the referenced product's identifier.
func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken at order time.
func (l *Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Subtotal returns quantity times unit price.
func (l *Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// attachTo sets the back-reference to the owning order. Only the Order
// constructor calls it.
func (l *Line) attachTo(orderID kernel.UUID) {
	l.orderID = orderID
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product", err)
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}
