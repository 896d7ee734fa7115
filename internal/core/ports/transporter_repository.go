package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/transporter"
)

// TransporterRepository defines the persistence contract for transporters.
type TransporterRepository interface {
	// Add persists a new transporter.
	Add(ctx context.Context, aggregate *transporter.Transporter) error

	// Get retrieves a transporter by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transporter.Transporter, error)

	// Exists reports whether a transporter with the given identity is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
