package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateInventoryItemCommandIsNotConstructed = errors.New(
		"create inventory item command is not constructed")
	ErrItemSkuIsRequired  = errors.New("item sku is required")
	ErrItemNameIsRequired = errors.New("item name is required")
)

// CreateInventoryItemCommand carries the data required to register a stock
// item. Sku and name are mandatory; quantity and location fall back to the
// domain defaults when left empty.
type CreateInventoryItemCommand struct {
	itemID   kernel.UUID
	sku      string
	name     string
	quantity int
	location string

	guard guard.ConstructorGuard
}

// NewCreateInventoryItemCommand creates a command for adding an inventory
// item. Quantity must not be negative.
func NewCreateInventoryItemCommand(
	itemID kernel.UUID, sku string, name string, quantity int, location string,
) (CreateInventoryItemCommand, error) {
	var err error

	if idErr := itemID.Validate(); idErr != nil {
		err = errors.Join(err, idErr)
	}

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
		return CreateInventoryItemCommand{}, err
	}

	return CreateInventoryItemCommand{
		itemID:   itemID,
		sku:      sku,
		name:     name,
		quantity: quantity,
		location: location,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c *CreateInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *CreateInventoryItemCommand) Sku() string {
	return c.sku
}

func (c *CreateInventoryItemCommand) Name() string {
	return c.name
}

func (c *CreateInventoryItemCommand) Quantity() int {
	return c.quantity
}

func (c *CreateInventoryItemCommand) Location() string {
	return c.location
}

func (c *CreateInventoryItemCommand) Validate() error {
	if c == nil {
		return ErrCreateInventoryItemCommandIsNotConstructed
	}

	return c.guard.Validate(ErrCreateInventoryItemCommandIsNotConstructed)
}
