// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The shipment date column doubles as the order's lifecycle marker: NULL means
// the order is still open.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryAddress AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Discount        float64
	ShippedOn       *time.Time `gorm:"type:date"`
	Lines           []LineDTO  `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one product-and-quantity entry owned by an order.
// Lines are insert-only; once written they are never updated or deleted.
type LineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "lines"
}

// AddressDTO represents the embedded delivery address columns within the
// order table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
}

// fromDomain converts an order domain aggregate to its database representation,
// including the owned line collection.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:        line.ID().Bytes(),
			OrderID:   line.OrderID().Bytes(),
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
		})
	}

	return OrderDTO{
		ID:       aggregate.ID().Bytes(),
		ClientID: aggregate.ClientID().Bytes(),
		DeliveryAddress: AddressDTO{
			Street:     aggregate.DeliveryAddress().Street(),
			City:       aggregate.DeliveryAddress().City(),
			PostalCode: aggregate.DeliveryAddress().PostalCode(),
		},
		Discount:  aggregate.Discount().Rate(),
		ShippedOn: aggregate.ShippedOn(),
		Lines:     lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	deliveryAddress, err := kernel.NewAddress(
		dto.DeliveryAddress.Street,
		dto.DeliveryAddress.City,
		dto.DeliveryAddress.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	discount, err := order.NewDiscount(dto.Discount)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		orderID, lineErr := kernel.UUIDFromBytes(lineDTO.OrderID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLine(lineID, orderID, productID, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, clientID, deliveryAddress, discount, dto.ShippedOn, lines)
}
