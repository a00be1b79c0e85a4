package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles partial updates to orders.
//
// Only supplied fields change. A supplied worker id must resolve against the
// record store inside the same transaction, so the referential invariant
// cannot be bypassed. No transition guard is applied to status changes.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command and returns the updated order.
// Returns an ObjectNotFoundError when the order id is unknown and an
// InvalidReferenceError when a supplied worker id does not resolve.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	existing, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if status := cmd.Status(); status != nil {
		if err = existing.ChangeStatus(*status); err != nil {
			return nil, err
		}
	}

	if pickTime := cmd.PickTime(); pickTime.Defined() {
		if v := pickTime.Value(); v != nil {
			if err = existing.RecordPickTime(*v); err != nil {
				return nil, err
			}
		} else {
			existing.ClearPickTime()
		}
	}

	if workerID := cmd.WorkerID(); workerID.Defined() {
		if v := workerID.Value(); v != nil {
			exists, existsErr := uow.WorkerRepository().Exists(ctx, *v)
			if existsErr != nil {
				return nil, existsErr
			}
			if !exists {
				return nil, errs.NewInvalidReferenceError("workerId", v.String())
			}
			if err = existing.AssignWorker(*v); err != nil {
				return nil, err
			}
		} else {
			existing.UnassignWorker()
		}
	}

	if err = uow.OrderRepository().Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
