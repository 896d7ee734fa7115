package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for the payment ledger.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment record.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// ExistsForOrder reports whether the order already has a payment record.
	// Payments are one-to-one with orders.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
