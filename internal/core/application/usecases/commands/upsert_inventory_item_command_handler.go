package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// UpsertInventoryItemCommandHandler creates or replaces a stock item keyed by
// its sku. The lookup and the write happen in one transaction, so repeated
// upserts of the same sku never produce a second row.
type UpsertInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewUpsertInventoryItemCommandHandler creates a handler for sku-keyed
// inventory upsert operations.
func NewUpsertInventoryItemCommandHandler(uowFactory InventoryUoWFactory) UpsertInventoryItemCommandHandler {
	return UpsertInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the upsert command and returns the resulting item.
func (h *UpsertInventoryItemCommandHandler) Handle(
	ctx context.Context, cmd UpsertInventoryItemCommand,
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

	existing, err := uow.InventoryRepository().GetBySku(ctx, cmd.Sku())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if existing == nil {
		created, createErr := inventory.NewItem(
			kernel.NewUUID(), cmd.Sku(), cmd.Name(), cmd.Quantity(), cmd.Location())
		if createErr != nil {
			return nil, createErr
		}

		if err = uow.InventoryRepository().Add(ctx, created); err != nil {
			return nil, err
		}

		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}

		return created, nil
	}

	location := cmd.Location()
	if location == "" {
		location = inventory.DefaultLocation
	}

	if err = errors.Join(
		existing.Rename(cmd.Name()),
		existing.ChangeQuantity(cmd.Quantity()),
		existing.Relocate(location),
	); err != nil {
		return nil, err
	}

	if err = uow.InventoryRepository().Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
