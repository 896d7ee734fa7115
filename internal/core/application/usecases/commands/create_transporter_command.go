package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrCreateTransporterCommandIsNotConstructed = errors.New(
	"CreateTransporterCommand must be created via NewCreateTransporterCommand constructor",
)

// CreateTransporterCommand represents a request to register a transporter.
type CreateTransporterCommand struct { //nolint:recvcheck //using for validation
	transporterID kernel.UUID
	name          string
	phone         string
	rating        *float64

	guard guard.ConstructorGuard
}

// NewCreateTransporterCommand creates a command to register a transporter.
func NewCreateTransporterCommand(
	transporterID kernel.UUID, name, phone string, rating *float64,
) (CreateTransporterCommand, error) {
	cmd := CreateTransporterCommand{
		name:   name,
		phone:  phone,
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setTransporterID(transporterID); err != nil {
		return CreateTransporterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransporterCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransporterCommandIsNotConstructed)
}

// TransporterID returns the identity assigned to the new transporter.
func (c CreateTransporterCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// Name returns the transporter name.
func (c CreateTransporterCommand) Name() string {
	return c.name
}

// Phone returns the transporter phone number.
func (c CreateTransporterCommand) Phone() string {
	return c.phone
}

// Rating returns the optional service rating.
func (c CreateTransporterCommand) Rating() *float64 {
	return c.rating
}

func (c *CreateTransporterCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}
