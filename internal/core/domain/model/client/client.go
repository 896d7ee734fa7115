// Package client contains the Client entity. Clients are referenced by
// orders, never owned by them.
package client

import (
	"errors"
	"fmt"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not
// created through NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")

// Client represents a customer who can place orders. Email uniqueness is
// enforced case-insensitively at the persistence layer; the entity
// normalizes the address to lower case so comparisons stay consistent.
type Client struct {
	id      kernel.UUID
	name    string
	email   string
	address string

	isConstructed bool
}

// NewClient creates a validated Client. Name and email are required.
func NewClient(id kernel.UUID, name, email, address string) (*Client, error) {
	c := &Client{
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient rebuilds a Client from persistence.
func RestoreClient(id kernel.UUID, name, email, address string) (*Client, error) {
	return NewClient(id, name, email, address)
}

// Validate ensures the Client was created through a constructor.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client name.
func (c *Client) Name() string {
	return c.name
}

// Email returns the client's email address, lower-cased.
func (c *Client) Email() string {
	return c.email
}

// Address returns the client's postal address.
func (c *Client) Address() string {
	return c.address
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not an email address", email))
	}
	c.email = strings.ToLower(email)
	return nil
}
