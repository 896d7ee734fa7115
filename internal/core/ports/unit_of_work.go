package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every lifecycle
// operation (admission, status update, delivery completion) runs inside one
// unit of work: either all reads, validations, and writes commit, or none
// do. Client code manages the transaction lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// Repositories bound to the current transaction. Each returns an
	// instance that uses the transaction started by Begin().
	ProductRepository() ProductRepository
	ClientRepository() ClientRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	PaymentRepository() PaymentRepository
	TransporterRepository() TransporterRepository
	SupplierRepository() SupplierRepository
}
