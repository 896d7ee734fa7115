// Package transporterrepo persists transporter aggregates.
package transporterrepo

import (
	"github.com/google/uuid"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/transporter"
)

// TransporterDTO represents the database structure for persisting
// transporters.
type TransporterDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Phone  string
	Rating *float64
}

// TableName specifies the database table name for transporters.
func (TransporterDTO) TableName() string {
	return "transporters"
}

func fromDomain(t *transporter.Transporter) TransporterDTO {
	return TransporterDTO{
		ID:     t.ID().Bytes(),
		Name:   t.Name(),
		Phone:  t.Phone(),
		Rating: t.Rating(),
	}
}

func toDomain(dto TransporterDTO) (*transporter.Transporter, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return transporter.RestoreTransporter(id, dto.Name, dto.Phone, dto.Rating)
}
