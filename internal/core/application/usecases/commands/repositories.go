// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"comptoirs/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CreateOrderUoW manages transactions for order creation: the client is
	// read (existence, address, history) and the new order is written.
	CreateOrderUoW interface {
		TxManager
		ClientRepoFactory
		OrderRepoFactory
	}

	// CreateOrderUoWFactory creates unit of work instances for order creation.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// OrderInventoryUoW manages transactions that touch an order together with
	// product counters: adding a line and finalizing shipment.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   productRepo := uow.ProductRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderInventoryUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderInventoryUoWFactory creates unit of work instances for
	// order-and-inventory operations.
	OrderInventoryUoWFactory interface {
		Create() OrderInventoryUoW
	}
)
