// Package clientrepo provides data transfer objects and mapping functions for
// client persistence. The order core reads clients but never creates or
// modifies them.
package clientrepo

import (
	"comptoirs/internal/core/domain/model/client"
	"comptoirs/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for client records.
type ClientDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// AddressDTO represents the embedded address columns within the client table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
}

// fromDomain converts a client domain entity to its database representation.
func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:   c.ID().Bytes(),
		Name: c.Name(),
		Address: AddressDTO{
			Street:     c.Address().Street(),
			City:       c.Address().City(),
			PostalCode: c.Address().PostalCode(),
		},
	}
}

// toDomain converts a database DTO to a client domain entity using RestoreClient.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.PostalCode)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, address)
}
