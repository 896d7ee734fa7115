package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrAssignTransporterCommandIsNotConstructed = errors.New(
	"AssignTransporterCommand must be created via NewAssignTransporterCommand constructor",
)

// AssignTransporterCommand represents a request to put a transporter on an
// existing delivery.
type AssignTransporterCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	transporterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignTransporterCommand creates a command to assign a transporter.
func NewAssignTransporterCommand(
	deliveryID, transporterID kernel.UUID,
) (AssignTransporterCommand, error) {
	cmd := AssignTransporterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTransporterID(transporterID),
	); err != nil {
		return AssignTransporterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTransporterCommand) Validate() error {
	return c.guard.Validate(ErrAssignTransporterCommandIsNotConstructed)
}

// DeliveryID returns the identity of the delivery.
func (c AssignTransporterCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// TransporterID returns the identity of the transporter to assign.
func (c AssignTransporterCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

func (c *AssignTransporterCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AssignTransporterCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}
