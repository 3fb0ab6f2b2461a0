package product

import (
	"errors"
	"fmt"

	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the inventory aggregate. It tracks two counters:
//
//   - unitsInStock: physical stock, decremented when an order ships.
//     Never negative after a committed operation.
//   - unitsOnOrder: cumulative tally of quantity requested across all lines
//     ever added for this product. Incremented on every line add and never
//     decremented here; reconciliation happens outside this core.
//
// Products are never created or destroyed by the order core; only their
// counters are mutated.
type Product struct {
	id           kernel.UUID
	name         string
	unitsInStock int
	unitsOnOrder int

	isConstructed bool
}

// NewProduct creates a Product with the given initial stock and a zero
// on-order counter.
func NewProduct(id kernel.UUID, name string, unitsInStock int) (*Product, error) {
	return RestoreProduct(id, name, unitsInStock, 0)
}

// RestoreProduct reconstructs a Product from persistence, validating both counters.
func RestoreProduct(id kernel.UUID, name string, unitsInStock int, unitsOnOrder int) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitsInStock(unitsInStock),
		p.setUnitsOnOrder(unitsOnOrder),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// UnitsInStock returns the current physical stock.
func (p *Product) UnitsInStock() int {
	return p.unitsInStock
}

// UnitsOnOrder returns the cumulative quantity requested across all lines.
func (p *Product) UnitsOnOrder() int {
	return p.unitsOnOrder
}

// PlaceOnOrder adds the given quantity to the on-order counter.
// No stock sufficiency check happens here; availability is enforced only
// at shipment time.
func (p *Product) PlaceOnOrder(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.unitsOnOrder += quantity
	return nil
}

// CanFulfill reports whether current stock covers the given quantity.
func (p *Product) CanFulfill(quantity int) bool {
	return p.unitsInStock >= quantity
}

// RemoveFromStock decrements stock by the given quantity.
// Fails with an InsufficientStockError when stock does not cover the quantity,
// leaving the counter untouched.
func (p *Product) RemoveFromStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !p.CanFulfill(quantity) {
		return NewInsufficientStockError(p.id, quantity, p.unitsInStock)
	}

	p.unitsInStock -= quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitsInStock(unitsInStock int) error {
	if unitsInStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitsInStock is invalid",
			fmt.Errorf("%d is negative", unitsInStock))
	}
	p.unitsInStock = unitsInStock
	return nil
}

func (p *Product) setUnitsOnOrder(unitsOnOrder int) error {
	if unitsOnOrder < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitsOnOrder is invalid",
			fmt.Errorf("%d is negative", unitsOnOrder))
	}
	p.unitsOnOrder = unitsOnOrder
	return nil
}
