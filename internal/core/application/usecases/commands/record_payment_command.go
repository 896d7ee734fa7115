package commands

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/payment"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a request to record a payment against an
// order. An omitted status defaults to Pending and an omitted timestamp to
// the time of recording.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID  kernel.UUID
	orderID    kernel.UUID
	occurredAt time.Time
	amount     decimal.Decimal
	method     payment.Method
	status     payment.Status

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
func NewRecordPaymentCommand(
	paymentID, orderID kernel.UUID,
	occurredAt time.Time,
	amount decimal.Decimal,
	method payment.Method,
	status payment.Status,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		occurredAt: occurredAt,
		amount:     amount,
		method:     method,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOrderID(orderID),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the identity assigned to the new payment.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the paid order's identity.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OccurredAt returns when the payment happened, zero for "now".
func (c RecordPaymentCommand) OccurredAt() time.Time {
	return c.occurredAt
}

// Amount returns the paid amount.
func (c RecordPaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

// Method returns the payment method.
func (c RecordPaymentCommand) Method() payment.Method {
	return c.method
}

// Status returns the requested initial status, Unknown for the default.
func (c RecordPaymentCommand) Status() payment.Status {
	return c.status
}

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("order")
	}

	c.orderID = orderID
	return nil
}
