package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are stored and loaded together; the lines carry
// the back-reference by order ID only.
type OrderRepository interface {
	// Add persists a new order aggregate together with its lines in the
	// current transaction.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Lines are
	// immutable after admission, so only the order row is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
