package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory items.
type InventoryRepository interface {
	// Add persists a new inventory item to storage.
	Add(ctx context.Context, aggregate *inventory.Item) error

	// Update persists changes to an existing inventory item.
	Update(ctx context.Context, aggregate *inventory.Item) error

	// Get retrieves an inventory item by its unique identifier.
	// Returns an ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error)

	// GetBySku retrieves an inventory item by its natural key.
	// Returns an ObjectNotFoundError when no item carries the sku.
	// This is the lookup backing the idempotent upsert path.
	GetBySku(ctx context.Context, sku string) (*inventory.Item, error)
}
