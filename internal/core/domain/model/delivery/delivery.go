// Package delivery contains the Delivery aggregate. A delivery belongs to
// exactly one order and optionally references a transporter. Setting its
// status to Delivered is the trigger for the cross-aggregate stock debit,
// which the delivery workflow performs; the aggregate itself only records
// state.
package delivery

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery tracks the shipment of a single order.
type Delivery struct {
	id            kernel.UUID
	orderID       kernel.UUID
	transporterID *kernel.UUID
	scheduledAt   *time.Time
	address       string
	cost          decimal.Decimal
	status        Status

	isConstructed bool
}

// NewDelivery creates a validated Delivery. The order reference and the
// address are required; everything else is optional. When status is Unknown
// it defaults to Pending.
func NewDelivery(
	id, orderID kernel.UUID,
	transporterID *kernel.UUID,
	scheduledAt *time.Time,
	address string,
	cost decimal.Decimal,
	status Status,
) (*Delivery, error) {
	if status == Unknown {
		status = Pending
	}

	d := &Delivery{
		scheduledAt:   scheduledAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setTransporterID(transporterID),
		d.SetAddress(address),
		d.SetCost(cost),
		d.SetStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a Delivery from persistence.
func RestoreDelivery(
	id, orderID kernel.UUID,
	transporterID *kernel.UUID,
	scheduledAt *time.Time,
	address string,
	cost decimal.Decimal,
	status Status,
) (*Delivery, error) {
	return NewDelivery(id, orderID, transporterID, scheduledAt, address, cost, status)
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the owning order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Transporter returns the assigned transporter's ID, or nil when unassigned.
func (d *Delivery) Transporter() *kernel.UUID {
	return d.transporterID
}

// ScheduledAt returns the scheduled delivery time, or nil when unscheduled.
func (d *Delivery) ScheduledAt() *time.Time {
	return d.scheduledAt
}

// Address returns the delivery address.
func (d *Delivery) Address() string {
	return d.address
}

// Cost returns the delivery cost.
func (d *Delivery) Cost() decimal.Decimal {
	return d.cost
}

// Status returns the current delivery status.
func (d *Delivery) Status() Status {
	return d.status
}

// IsDelivered reports whether the delivery already completed.
func (d *Delivery) IsDelivered() bool {
	return d.status == Delivered
}

// SetStatus replaces the status. Any membership-valid value is accepted;
// there is no transition table for deliveries.
func (d *Delivery) SetStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	d.status = next
	return nil
}

// AssignTransporter sets the transporter association.
func (d *Delivery) AssignTransporter(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}
	d.transporterID = &transporterID
	return nil
}

// AttachOrder points the delivery at another order.
func (d *Delivery) AttachOrder(orderID kernel.UUID) error {
	return d.setOrderID(orderID)
}

// ClearTransporter removes the transporter association.
func (d *Delivery) ClearTransporter() {
	d.transporterID = nil
}

// Reschedule replaces the scheduled delivery time.
func (d *Delivery) Reschedule(at time.Time) {
	d.scheduledAt = &at
}

// SetAddress replaces the delivery address. The address must be non-empty.
func (d *Delivery) SetAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

// SetCost replaces the delivery cost. Cost must not be negative.
func (d *Delivery) SetCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost",
			fmt.Errorf("%s is negative", cost))
	}
	d.cost = cost
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setTransporterID(transporterID *kernel.UUID) error {
	if transporterID == nil {
		return nil
	}
	if err := transporterID.Validate(); err != nil {
		return err
	}
	d.transporterID = transporterID
	return nil
}
