package commands

import (
	"errors"
	"fmt"

	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/pkg/errs"
	"comptoirs/internal/pkg/guard"
)

var ErrAddOrderLineCommandIsNotConstructed = errors.New(
	"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
)

// AddOrderLineCommand represents a request to append a product-and-quantity
// line to an existing open order.
//
// The quantity check is a cheap, local validation: a non-positive quantity is
// rejected at construction time, before any repository lookup happens.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to add a line to an order.
// The order and product identifiers must be valid and the quantity positive.
func NewAddOrderLineCommand(orderID kernel.UUID, productID kernel.UUID, quantity int) (AddOrderLineCommand, error) {
	lineCommand := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineCommand.setOrderID(orderID),
		lineCommand.setProductID(productID),
		lineCommand.setQuantity(quantity),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return lineCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to append to.
func (c AddOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the referenced product.
func (c AddOrderLineCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the quantity to order. Always positive.
func (c AddOrderLineCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrderLineCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
