package commands

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to schedule a delivery for an
// order. Transporter and schedule are optional at creation time; an omitted
// status defaults to Pending.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	orderID       kernel.UUID
	transporterID *kernel.UUID
	scheduledAt   *time.Time
	address       string
	cost          decimal.Decimal
	status        delivery.Status

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to schedule a delivery.
func NewCreateDeliveryCommand(
	deliveryID, orderID kernel.UUID,
	transporterID *kernel.UUID,
	scheduledAt *time.Time,
	address string,
	cost decimal.Decimal,
	status delivery.Status,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		transporterID: transporterID,
		scheduledAt:   scheduledAt,
		address:       address,
		cost:          cost,
		status:        status,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setOrderID(orderID),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identity assigned to the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the owning order's identity.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TransporterID returns the optional transporter to assign.
func (c CreateDeliveryCommand) TransporterID() *kernel.UUID {
	return c.transporterID
}

// ScheduledAt returns the optional scheduled date.
func (c CreateDeliveryCommand) ScheduledAt() *time.Time {
	return c.scheduledAt
}

// Address returns the destination address.
func (c CreateDeliveryCommand) Address() string {
	return c.address
}

// Cost returns the delivery cost.
func (c CreateDeliveryCommand) Cost() decimal.Decimal {
	return c.cost
}

// Status returns the requested initial status, Unknown for the default.
func (c CreateDeliveryCommand) Status() delivery.Status {
	return c.status
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("order")
	}

	c.orderID = orderID
	return nil
}
