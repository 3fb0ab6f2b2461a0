package ports

import (
	"context"

	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// The order core only mutates product counters; products themselves are
// created and destroyed elsewhere.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Update persists the product's stock and on-order counters.
	Update(ctx context.Context, aggregate *product.Product) error
}
