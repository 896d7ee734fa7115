package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/supplier"
)

// SupplierRepository defines the persistence contract for suppliers.
type SupplierRepository interface {
	// Add persists a new supplier.
	Add(ctx context.Context, aggregate *supplier.Supplier) error

	// Get retrieves a supplier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)

	// Exists reports whether a supplier with the given identity is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
