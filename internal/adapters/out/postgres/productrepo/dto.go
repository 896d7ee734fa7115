// Package productrepo persists product aggregates. It maps between the
// domain model and the products table, including the supplier association.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric"`
	Stock       int
	SupplierID  *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	var supplierID *uuid.UUID
	if id := p.Supplier(); id != nil {
		raw := id.Bytes()
		supplierID = &raw
	}

	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Stock:       p.Stock(),
		SupplierID:  supplierID,
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var supplierID *kernel.UUID
	if dto.SupplierID != nil {
		sID, supplierErr := kernel.UUIDFromBytes((*dto.SupplierID)[:])
		if supplierErr != nil {
			return nil, supplierErr
		}
		supplierID = &sID
	}

	return product.RestoreProduct(id, dto.Name, dto.Description, dto.Price, dto.Stock, supplierID)
}
