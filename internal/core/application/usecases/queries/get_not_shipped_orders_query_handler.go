package queries

import (
	"context"

	"comptoirs/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotShippedOrdersQueryHandler retrieves open orders from the database.
// Filters out shipped orders to provide pending fulfillment visibility.
type GetNotShippedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetNotShippedOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetNotShippedOrdersQueryHandler(db *gorm.DB) GetNotShippedOrdersQueryHandler {
	return GetNotShippedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders without a shipment date.
// Results are sorted by order ID for consistent output.
func (h GetNotShippedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetNotShippedOrdersQuery,
) ([]GetNotShippedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetNotShippedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			delivery_city
		FROM orders
		WHERE shipped_on IS NULL
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetNotShippedOrdersQueryResponse
		var id uuid.UUID
		var deliveryCity string

		err = rows.Scan(
			&id,
			&deliveryCity,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.DeliveryCity = deliveryCity
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
