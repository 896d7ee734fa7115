// Package ports defines repository and unit-of-work interfaces for the
// commerce domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates,
// including the stock counter.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product and locks its row for the duration of
	// the surrounding transaction. Stock debits go through this method so
	// concurrent debits against the same product serialize instead of losing
	// updates.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
