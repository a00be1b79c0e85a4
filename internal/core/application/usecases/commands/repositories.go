// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
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

	// WorkerRepoFactory provides access to the worker repository within a transaction.
	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// WorkerUoW manages transactions for worker-only operations.
	WorkerUoW interface {
		TxManager
		WorkerRepoFactory
	}

	// WorkerUoWFactory creates new worker unit of work instances.
	WorkerUoWFactory interface {
		Create() WorkerUoW
	}

	// OrderUoW manages transactions for order operations.
	// It also exposes the worker repository because order creation and update
	// must resolve worker references inside the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		WorkerRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InventoryUoW manages transactions for inventory-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}
)
