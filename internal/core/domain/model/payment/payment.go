// Package payment contains the Payment aggregate: a ledger of payment
// attempts against orders. Payments record state changes, they never execute
// them against an external processor, and nothing here feeds back into the
// order state machine.
package payment

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment records a single payment attempt for an order. Exactly one payment
// row exists per order.
type Payment struct {
	id         kernel.UUID
	orderID    kernel.UUID
	occurredAt time.Time
	amount     decimal.Decimal
	method     Method
	status     Status

	isConstructed bool
}

// NewPayment creates a validated Payment. Status defaults to Pending and the
// timestamp to now when unset.
func NewPayment(
	id, orderID kernel.UUID,
	occurredAt time.Time,
	amount decimal.Decimal,
	method Method,
	status Status,
) (*Payment, error) {
	if status == StatusUnknown {
		status = StatusPending
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	p := &Payment{
		occurredAt:    occurredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setMethod(method),
		p.SetStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment rebuilds a Payment from persistence.
func RestorePayment(
	id, orderID kernel.UUID,
	occurredAt time.Time,
	amount decimal.Decimal,
	method Method,
	status Status,
) (*Payment, error) {
	return NewPayment(id, orderID, occurredAt, amount, method, status)
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the paid order's identifier.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// OccurredAt returns the payment timestamp.
func (p *Payment) OccurredAt() time.Time {
	return p.occurredAt
}

// Amount returns the amount paid.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// Method returns the payment instrument.
func (p *Payment) Method() Method {
	return p.method
}

// Status returns the recorded payment status.
func (p *Payment) Status() Status {
	return p.status
}

// SetStatus replaces the status with any valid value.
func (p *Payment) SetStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	p.status = next
	return nil
}

// Process marks the payment Completed unconditionally. No external processor
// is involved; this is a ledger entry only.
func (p *Payment) Process() {
	p.status = StatusCompleted
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}
