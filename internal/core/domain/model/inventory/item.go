package inventory

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// DefaultLocation is the storage location applied when none is supplied.
const DefaultLocation = "Aisle ?"

var (
	// ErrSkuIsRequired is returned when attempting to create an item without a sku.
	ErrSkuIsRequired = errs.NewValueIsRequiredError("sku")
	// ErrNameIsRequired is returned when attempting to create an item without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
)

// Item represents a stocked inventory item.
// It is an aggregate root managing stock identity and quantity.
//
// Business rules:
//   - sku and name are required; sku is unique across items (store-enforced)
//   - quantity is never negative
//   - items are never deleted
type Item struct {
	// id uniquely identifies the item
	id kernel.UUID
	// sku is the natural unique key used for idempotent loading
	sku string
	// name is the human-readable item name
	name string
	// quantity is the current stock level
	quantity int
	// location is the storage location, free text
	location string
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a new Item with validation.
// An empty location falls back to DefaultLocation.
func NewItem(id kernel.UUID, sku, name string, quantity int, location string) (*Item, error) {
	if location == "" {
		location = DefaultLocation
	}

	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setSku(sku),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.location = location
	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
func RestoreItem(id kernel.UUID, sku, name string, quantity int, location string) (*Item, error) {
	return NewItem(id, sku, name, quantity, location)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Sku returns the item's stock keeping unit.
func (i *Item) Sku() string {
	return i.sku
}

// Name returns the item's name.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the current stock level.
func (i *Item) Quantity() int {
	return i.quantity
}

// Location returns the item's storage location.
func (i *Item) Location() string {
	return i.location
}

// Rename changes the item's name. The new name must be non-empty.
func (i *Item) Rename(name string) error {
	return i.setName(name)
}

// ChangeQuantity sets the stock level. The quantity must be non-negative.
func (i *Item) ChangeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

// Relocate changes the item's storage location. The location must be non-empty.
func (i *Item) Relocate(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	i.location = location
	return nil
}

// IsLowStock reports whether the stock level is at or below the given threshold.
func (i *Item) IsLowStock(threshold int) bool {
	return i.quantity <= threshold
}

// setID validates and sets the item's unique identifier.
func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setSku validates and sets the item's sku.
func (i *Item) setSku(sku string) error {
	if sku == "" {
		return ErrSkuIsRequired
	}
	i.sku = sku
	return nil
}

// setName validates and sets the item's name.
func (i *Item) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

// setQuantity validates and sets the stock level.
func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
