package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/payment"
	"commerce/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand represents a request to set a payment's status.
// The payment ledger has no transition rules; any known status is accepted.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	status    payment.Status

	guard guard.ConstructorGuard
}

// NewUpdatePaymentStatusCommand creates a command to change a payment's status.
func NewUpdatePaymentStatusCommand(
	paymentID kernel.UUID, status payment.Status,
) (UpdatePaymentStatusCommand, error) {
	cmd := UpdatePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setStatus(status),
	); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

// PaymentID returns the identity of the payment to update.
func (c UpdatePaymentStatusCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Status returns the requested target status.
func (c UpdatePaymentStatusCommand) Status() payment.Status {
	return c.status
}

func (c *UpdatePaymentStatusCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *UpdatePaymentStatusCommand) setStatus(status payment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
