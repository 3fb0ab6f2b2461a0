package ports

import (
	"context"

	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its owned line collection.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing open order, including any lines
	// appended since it was loaded. Only open orders are updatable; a
	// concurrent shipment of the same order makes the update fail instead of
	// silently overwriting the terminal state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
