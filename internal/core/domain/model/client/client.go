// Package client holds the customer entity. The order core only reads
// clients: it resolves them by key and copies their address into new orders.
// Client records themselves are managed outside this core.
package client

import (
	"errors"

	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not created
// through the NewClient or RestoreClient factory methods.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client represents a customer known to the system.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Must have a valid address
type Client struct {
	id      kernel.UUID
	name    string
	address kernel.Address

	isConstructed bool
}

// NewClient creates a Client instance with validation.
func NewClient(id kernel.UUID, name string, address kernel.Address) (*Client, error) {
	c := &Client{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a Client from persistence.
// It applies the same validation as NewClient.
func RestoreClient(id kernel.UUID, name string, address kernel.Address) (*Client, error) {
	return NewClient(id, name, address)
}

// Validate ensures the Client instance was properly constructed.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}

	return nil
}

// IsEqual compares two clients by their unique identifiers.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// Address returns the client's postal address.
func (c *Client) Address() kernel.Address {
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

func (c *Client) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
