package ports

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for deliveries.
type DeliveryRepository interface {
	// Add persists a new delivery.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// ExistsForOrder reports whether the order already has a delivery.
	// Deliveries are one-to-one with orders.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// GetOverdue retrieves deliveries still Pending or EnRoute whose
	// scheduled time lies before asOf. Used by the delay sweeper.
	GetOverdue(ctx context.Context, asOf time.Time) ([]*delivery.Delivery, error)
}
