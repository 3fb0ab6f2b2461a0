package order

import (
	"errors"
	"fmt"

	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine or RestoreLine factory methods.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product-and-quantity entry within an order. Its existence is
// entirely owned by the order: the order holds the line collection and the
// line carries identifying references back to its order and product, never
// pointers into the aggregate.
//
// Lines are created once and never mutated or deleted.
type Line struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int

	isConstructed bool
}

// NewLine creates a Line referencing the given order and product.
// The quantity must be strictly positive.
func NewLine(id kernel.UUID, orderID kernel.UUID, productID kernel.UUID, quantity int) (*Line, error) {
	l := &Line{
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setOrderID(orderID),
		l.setProductID(productID),
		l.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLine reconstructs a Line from persistence.
// It applies the same validation as NewLine.
func RestoreLine(id kernel.UUID, orderID kernel.UUID, productID kernel.UUID, quantity int) (*Line, error) {
	return NewLine(id, orderID, productID, quantity)
}

// Validate ensures the Line instance was properly constructed.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}

	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// OrderID returns the identifier of the owning order.
func (l *Line) OrderID() kernel.UUID {
	return l.orderID
}

// ProductID returns the identifier of the referenced product.
func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity. Always positive.
func (l *Line) Quantity() int {
	return l.quantity
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	l.orderID = orderID
	return nil
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
