package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderLineInput carries one requested order line. Lines are kept as raw
// input here: the handler checks them one by one so the first broken line is
// the one reported, after the client itself has been resolved.
type PlaceOrderLineInput struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// PlaceOrderCommand represents a request to admit a new order.
// The order total is always derived from the lines; callers cannot supply it.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), clientID, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	clientID kernel.UUID
	lines    []PlaceOrderLineInput

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to admit a new order.
// Validates the order and client identities; line contents are validated by
// the handler inside the admission transaction.
func NewPlaceOrderCommand(
	orderID, clientID kernel.UUID,
	lines []PlaceOrderLineInput,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		lines: lines,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identity assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the ordering client's identity.
func (c PlaceOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []PlaceOrderLineInput {
	return c.lines
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("client")
	}

	c.clientID = clientID
	return nil
}
