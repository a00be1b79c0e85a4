package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpsertInventoryItemCommandIsNotConstructed = errors.New(
	"upsert inventory item command is not constructed")

// UpsertInventoryItemCommand carries the full desired state of a stock item,
// addressed by its sku. The handler creates the item if the sku is new and
// overwrites name, quantity and location otherwise.
type UpsertInventoryItemCommand struct {
	sku      string
	name     string
	quantity int
	location string

	guard guard.ConstructorGuard
}

// NewUpsertInventoryItemCommand creates a command for creating or replacing
// an inventory item by sku. Quantity must not be negative; an empty location
// resolves to the domain default.
func NewUpsertInventoryItemCommand(
	sku string, name string, quantity int, location string,
) (UpsertInventoryItemCommand, error) {
	var err error

	if sku == "" {
		err = errors.Join(err, ErrItemSkuIsRequired)
	}

	if name == "" {
		err = errors.Join(err, ErrItemNameIsRequired)
	}

	if quantity < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		))
	}

	if err != nil {
		return UpsertInventoryItemCommand{}, err
	}

	return UpsertInventoryItemCommand{
		sku:      sku,
		name:     name,
		quantity: quantity,
		location: location,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c *UpsertInventoryItemCommand) Sku() string {
	return c.sku
}

func (c *UpsertInventoryItemCommand) Name() string {
	return c.name
}

func (c *UpsertInventoryItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpsertInventoryItemCommand) Location() string {
	return c.location
}

func (c *UpsertInventoryItemCommand) Validate() error {
	if c == nil {
		return ErrUpsertInventoryItemCommandIsNotConstructed
	}

	return c.guard.Validate(ErrUpsertInventoryItemCommandIsNotConstructed)
}
