package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
)

// CreateInventoryItemCommandHandler handles registration of new stock items.
type CreateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewCreateInventoryItemCommandHandler creates a handler for inventory item
// creation operations. Requires an InventoryUoWFactory for transactional
// persistence.
func NewCreateInventoryItemCommandHandler(uowFactory InventoryUoWFactory) CreateInventoryItemCommandHandler {
	return CreateInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory item creation command and returns the
// persisted item. Sku uniqueness is enforced by the record store.
func (h *CreateInventoryItemCommandHandler) Handle(
	ctx context.Context, cmd CreateInventoryItemCommand,
) (*inventory.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := inventory.NewItem(cmd.ItemID(), cmd.Sku(), cmd.Name(), cmd.Quantity(), cmd.Location())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InventoryRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
