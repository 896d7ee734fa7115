package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand represents a request to settle a payment. Processing
// marks the payment Completed unconditionally; no gateway is involved.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to settle a payment.
func NewProcessPaymentCommand(paymentID kernel.UUID) (ProcessPaymentCommand, error) {
	cmd := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPaymentID(paymentID); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// PaymentID returns the identity of the payment to settle.
func (c ProcessPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *ProcessPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}
