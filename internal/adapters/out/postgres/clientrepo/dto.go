// Package clientrepo persists client aggregates.
package clientrepo

import (
	"github.com/google/uuid"

	"commerce/internal/core/domain/model/client"
	"commerce/internal/core/domain/model/kernel"
)

// ClientDTO represents the database structure for persisting clients.
// Emails are stored lower-cased by the aggregate, so the unique index is
// effectively case-insensitive.
type ClientDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Email   string `gorm:"uniqueIndex"`
	Address string
}

// TableName specifies the database table name for clients.
func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:      c.ID().Bytes(),
		Name:    c.Name(),
		Email:   c.Email(),
		Address: c.Address(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.Email, dto.Address)
}
