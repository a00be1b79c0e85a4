// Package inventoryrepo provides data transfer objects and mapping functions for
// inventory persistence. This package implements the repository pattern for the
// inventory item aggregate, handling the conversion between domain entities and
// database representations.
package inventoryrepo

import (
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting inventory items.
// The sku carries a unique index: it is the natural key the upsert path
// resolves against.
type ItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sku      string    `gorm:"uniqueIndex"`
	Name     string
	Quantity int
	Location string
}

// TableName specifies the database table name for inventory items.
// Overrides GORM's default naming convention to use "inventory_items".
func (ItemDTO) TableName() string {
	return "inventory_items"
}

// fromDomain converts an inventory item aggregate to its database representation.
func fromDomain(aggregate *inventory.Item) ItemDTO {
	return ItemDTO{
		ID:       aggregate.ID().Bytes(),
		Sku:      aggregate.Sku(),
		Name:     aggregate.Name(),
		Quantity: aggregate.Quantity(),
		Location: aggregate.Location(),
	}
}

// toDomain converts a database DTO to an inventory item aggregate.
func toDomain(dto ItemDTO) (*inventory.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(id, dto.Sku, dto.Name, dto.Quantity, dto.Location)
}
