package ports

import (
	"context"

	"commerce/internal/core/domain/model/client"
	"commerce/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for clients.
type ClientRepository interface {
	// Add persists a new client.
	Add(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// Exists reports whether a client with the given identity is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// ExistsByEmail reports whether a client with the given email is stored.
	// The comparison is case-insensitive.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
