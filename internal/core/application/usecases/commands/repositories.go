// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest unit of work that covers
// the aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// TransporterRepoFactory provides access to the transporter repository within a transaction.
	TransporterRepoFactory interface {
		TransporterRepository() ports.TransporterRepository
	}

	// SupplierRepoFactory provides access to the supplier repository within a transaction.
	SupplierRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
	}

	// AdmissionUoW manages the order-admission transaction: client lookup,
	// stock reads, and the order insert commit or roll back together.
	AdmissionUoW interface {
		TxManager
		ClientRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// AdmissionUoWFactory creates admission unit of work instances.
	AdmissionUoWFactory interface {
		Create() AdmissionUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW manages the delivery workflow transaction. Delivery
	// completion mutates delivery, order, and product rows atomically, so
	// all four repositories share one transaction.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		TransporterRepoFactory
		ProductRepoFactory
	}

	// DeliveryUoWFactory creates delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// PaymentUoW manages payment-ledger transactions.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
	}

	// PaymentUoWFactory creates payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// InventoryUoW manages product and supplier transactions.
	InventoryUoW interface {
		TxManager
		ProductRepoFactory
		SupplierRepoFactory
	}

	// InventoryUoWFactory creates inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// ClientUoW manages client-only transactions.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// TransporterUoW manages transporter-only transactions.
	TransporterUoW interface {
		TxManager
		TransporterRepoFactory
	}

	// TransporterUoWFactory creates transporter unit of work instances.
	TransporterUoWFactory interface {
		Create() TransporterUoW
	}
)
