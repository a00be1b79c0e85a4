package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
)

// UpdateInventoryItemCommandHandler handles partial updates to stock items.
// The sku is a natural key and cannot be changed after creation.
type UpdateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewUpdateInventoryItemCommandHandler creates a handler for inventory item
// update operations.
func NewUpdateInventoryItemCommandHandler(uowFactory InventoryUoWFactory) UpdateInventoryItemCommandHandler {
	return UpdateInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory item update command and returns the updated
// item. Returns an ObjectNotFoundError when the item id is unknown.
func (h *UpdateInventoryItemCommandHandler) Handle(
	ctx context.Context, cmd UpdateInventoryItemCommand,
) (*inventory.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.InventoryRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if name := cmd.Name(); name != nil {
		if err = existing.Rename(*name); err != nil {
			return nil, err
		}
	}

	if quantity := cmd.Quantity(); quantity != nil {
		if err = existing.ChangeQuantity(*quantity); err != nil {
			return nil, err
		}
	}

	if location := cmd.Location(); location != nil {
		if err = existing.Relocate(*location); err != nil {
			return nil, err
		}
	}

	if err = uow.InventoryRepository().Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
