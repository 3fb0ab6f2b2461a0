package product

import (
	"errors"
	"fmt"

	"comptoirs/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is the sentinel for stock shortfalls, usable with errors.Is.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError reports that a product's stock does not cover a
// requested quantity. It identifies the offending product and both quantities
// so callers can surface the shortfall precisely.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	InStock   int
}

// NewInsufficientStockError creates an InsufficientStockError for the given product.
func NewInsufficientStockError(productID kernel.UUID, requested int, inStock int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		InStock:   inStock,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s has %d units in stock, %d requested",
		ErrInsufficientStock, e.ProductID, e.InStock, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
