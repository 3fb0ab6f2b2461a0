// Package productrepo provides data transfer objects and mapping functions
// for product persistence. The order core only mutates product counters;
// product records themselves are managed elsewhere.
package productrepo

import (
	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for product records.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	UnitsInStock int
	UnitsOnOrder int
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name(),
		UnitsInStock: p.UnitsInStock(),
		UnitsOnOrder: p.UnitsOnOrder(),
	}
}

// toDomain converts a database DTO to a product domain aggregate using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.UnitsInStock, dto.UnitsOnOrder)
}
