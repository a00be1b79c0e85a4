package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateInventoryItemCommandIsNotConstructed = errors.New(
	"update inventory item command is not constructed")

// UpdateInventoryItemCommand carries a partial update for a stock item.
// Nil fields are left untouched by the handler.
type UpdateInventoryItemCommand struct {
	itemID   kernel.UUID
	name     *string
	quantity *int
	location *string

	guard guard.ConstructorGuard
}

// NewUpdateInventoryItemCommand creates a command for partially updating an
// inventory item. A supplied quantity must not be negative; a supplied name
// or location must not be empty.
func NewUpdateInventoryItemCommand(
	itemID kernel.UUID, name *string, quantity *int, location *string,
) (UpdateInventoryItemCommand, error) {
	var err error

	if idErr := itemID.Validate(); idErr != nil {
		err = errors.Join(err, idErr)
	}

	if name != nil && *name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("name"))
	}

	if quantity != nil && *quantity < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", *quantity),
		))
	}

	if location != nil && *location == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("location"))
	}

	if err != nil {
		return UpdateInventoryItemCommand{}, err
	}

	return UpdateInventoryItemCommand{
		itemID:   itemID,
		name:     name,
		quantity: quantity,
		location: location,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c *UpdateInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *UpdateInventoryItemCommand) Name() *string {
	return c.name
}

func (c *UpdateInventoryItemCommand) Quantity() *int {
	return c.quantity
}

func (c *UpdateInventoryItemCommand) Location() *string {
	return c.location
}

func (c *UpdateInventoryItemCommand) Validate() error {
	if c == nil {
		return ErrUpdateInventoryItemCommandIsNotConstructed
	}

	return c.guard.Validate(ErrUpdateInventoryItemCommandIsNotConstructed)
}
