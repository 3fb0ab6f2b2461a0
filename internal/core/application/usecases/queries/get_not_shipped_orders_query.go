package queries

import (
	"errors"

	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/pkg/guard"
)

var (
	ErrGetNotShippedOrdersQueryIsNotConstructed = errors.New(
		"GetNotShippedOrdersQuery must be created via NewGetNotShippedOrdersQuery constructor",
	)
)

// GetNotShippedOrdersQuery retrieves all orders still awaiting shipment.
// Returns open orders (no shipment date yet) for monitoring and fulfillment
// planning.
//
// Example:
//
//	query := NewGetNotShippedOrdersQuery()
//	handler := NewGetNotShippedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders awaiting shipment\n", len(orders))
type GetNotShippedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNotShippedOrdersQuery creates a query to retrieve open orders.
// This is a parameterless query that fetches all orders not yet shipped.
func NewGetNotShippedOrdersQuery() GetNotShippedOrdersQuery {
	return GetNotShippedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNotShippedOrdersQueryIsNotConstructed if validation fails.
func (q GetNotShippedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetNotShippedOrdersQueryIsNotConstructed)
}

// GetNotShippedOrdersQueryResponse represents an open order awaiting shipment.
type GetNotShippedOrdersQueryResponse struct {
	ID           kernel.UUID
	DeliveryCity string
}
