package order

import (
	"errors"
	"time"

	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/core/domain/model/product"
	"comptoirs/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyShipped is returned when mutating or re-shipping a shipped
	// order. Shipment is not idempotent: repeating it is an error, not a no-op.
	ErrOrderAlreadyShipped = errors.New("order is already shipped")
)

// Order is the aggregate root for a customer's request for products. It owns
// its line collection and manages the lifecycle from open to shipped.
//
// Lifecycle: an order is created open (ShippedOn nil), accumulates lines while
// open, and transitions exactly once to shipped. Once shipped it is immutable:
// no further lines may be added and shipment may not be repeated.
//
// Invariants:
//   - Must have valid order and client identifiers
//   - Delivery address is a value copy of the client's address at creation
//     time, independently mutable afterwards
//   - Discount is always defined (NoDiscount rather than null)
//   - Every line's quantity is positive
type Order struct {
	id              kernel.UUID
	clientID        kernel.UUID
	deliveryAddress kernel.Address
	discount        Discount
	shippedOn       *time.Time
	lines           []*Line

	isConstructed bool
}

// NewOrder creates an open Order for the given client with no lines.
// The delivery address is the copy of the client's address made by the caller.
func NewOrder(id kernel.UUID, clientID kernel.UUID, deliveryAddress kernel.Address, discount Discount) (*Order, error) {
	return RestoreOrder(id, clientID, deliveryAddress, discount, nil, nil)
}

// RestoreOrder reconstructs an Order from persistence, including its shipment
// date and line collection. It applies the same validation as NewOrder.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	deliveryAddress kernel.Address,
	discount Discount,
	shippedOn *time.Time,
	lines []*Line,
) (*Order, error) {
	o := &Order{
		shippedOn:     shippedOn,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setDeliveryAddress(deliveryAddress),
		o.setDiscount(discount),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the owning client.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// DeliveryAddress returns the order's delivery address.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// Discount returns the discount applied to the order.
func (o *Order) Discount() Discount {
	return o.discount
}

// ShippedOn returns the shipment date, or nil while the order is open.
func (o *Order) ShippedOn() *time.Time {
	if o.shippedOn == nil {
		return nil
	}
	shipped := *o.shippedOn
	return &shipped
}

// IsShipped reports whether the order has been shipped.
func (o *Order) IsShipped() bool {
	return o.shippedOn != nil
}

// Lines returns the order's line collection.
// The returned slice is a copy; lines themselves are immutable.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// AddLine appends a new line for the given product and quantity.
//
// Business rules:
//   - The order must not be shipped yet
//   - The quantity must be strictly positive
//
// No stock sufficiency check happens here; a line whose quantity exceeds
// available stock is legal and only surfaces when shipment is attempted.
func (o *Order) AddLine(lineID kernel.UUID, productID kernel.UUID, quantity int) (*Line, error) {
	if o.IsShipped() {
		return nil, ErrOrderAlreadyShipped
	}

	line, err := NewLine(lineID, o.id, productID, quantity)
	if err != nil {
		return nil, err
	}

	o.lines = append(o.lines, line)
	return line, nil
}

// Ship transitions the order to shipped, stamping the shipment date and
// decrementing each line's product stock by the line quantity.
//
// The algorithm runs in two explicit passes:
//
//  1. Validation: every line's product must cover the line quantity. Any
//     shortfall fails the whole operation with an InsufficientStockError
//     before a single counter is touched.
//  2. Commit: only reached when every line validated; decrements all stocks
//     and sets the shipment date.
//
// The products map must contain an entry for every product referenced by the
// order's lines; a missing entry fails with an ObjectNotFoundError.
func (o *Order) Ship(when time.Time, products map[kernel.UUID]*product.Product) error {
	if o.IsShipped() {
		return ErrOrderAlreadyShipped
	}

	// Validation pass: no mutation until every line is known to be satisfiable.
	for _, line := range o.lines {
		p, ok := products[line.ProductID()]
		if !ok {
			return errs.NewObjectNotFoundError("product", line.ProductID().String())
		}
		if !p.CanFulfill(line.Quantity()) {
			return product.NewInsufficientStockError(p.ID(), line.Quantity(), p.UnitsInStock())
		}
	}

	// Commit pass.
	for _, line := range o.lines {
		if err := products[line.ProductID()].RemoveFromStock(line.Quantity()); err != nil {
			return err
		}
	}

	o.shippedOn = &when
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setDiscount(discount Discount) error {
	if err := discount.Validate(); err != nil {
		return err
	}
	o.discount = discount
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}
