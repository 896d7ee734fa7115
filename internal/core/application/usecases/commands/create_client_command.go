package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a client.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	email    string
	address  string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a client.
func NewCreateClientCommand(
	clientID kernel.UUID, name, email, address string,
) (CreateClientCommand, error) {
	cmd := CreateClientCommand{
		name:    name,
		email:   email,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setClientID(clientID); err != nil {
		return CreateClientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the identity assigned to the new client.
func (c CreateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the client name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// Email returns the client email.
func (c CreateClientCommand) Email() string {
	return c.email
}

// Address returns the client address.
func (c CreateClientCommand) Address() string {
	return c.address
}

func (c *CreateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
