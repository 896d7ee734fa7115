package commands

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand represents a partial update of a delivery. Nil
// fields keep their stored values, with one exception: a nil transporter
// clears the assignment rather than preserving it.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	orderID       *kernel.UUID
	transporterID *kernel.UUID
	scheduledAt   *time.Time
	address       *string
	cost          *decimal.Decimal
	status        *delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to partially update a delivery.
func NewUpdateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID, transporterID *kernel.UUID,
	scheduledAt *time.Time,
	address *string,
	cost *decimal.Decimal,
	status *delivery.Status,
) (UpdateDeliveryCommand, error) {
	cmd := UpdateDeliveryCommand{
		orderID:       orderID,
		transporterID: transporterID,
		scheduledAt:   scheduledAt,
		address:       address,
		cost:          cost,
		status:        status,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identity of the delivery to update.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the optional replacement order reference.
func (c UpdateDeliveryCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// TransporterID returns the transporter to assign, nil to clear.
func (c UpdateDeliveryCommand) TransporterID() *kernel.UUID {
	return c.transporterID
}

// ScheduledAt returns the optional replacement schedule.
func (c UpdateDeliveryCommand) ScheduledAt() *time.Time {
	return c.scheduledAt
}

// Address returns the optional replacement address.
func (c UpdateDeliveryCommand) Address() *string {
	return c.address
}

// Cost returns the optional replacement cost.
func (c UpdateDeliveryCommand) Cost() *decimal.Decimal {
	return c.cost
}

// Status returns the optional replacement status.
func (c UpdateDeliveryCommand) Status() *delivery.Status {
	return c.status
}

func (c *UpdateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
