// Package supplierrepo persists supplier aggregates.
package supplierrepo

import (
	"github.com/google/uuid"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/supplier"
)

// SupplierDTO represents the database structure for persisting suppliers.
type SupplierDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Email   string
	Phone   string
	Address string
	Rating  *float64
}

// TableName specifies the database table name for suppliers.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

func fromDomain(s *supplier.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:      s.ID().Bytes(),
		Name:    s.Name(),
		Email:   s.Email(),
		Phone:   s.Phone(),
		Address: s.Address(),
		Rating:  s.Rating(),
	}
}

func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return supplier.RestoreSupplier(id, dto.Name, dto.Email, dto.Phone, dto.Address, dto.Rating)
}
