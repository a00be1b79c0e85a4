package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The worker-reference check lives here, inside the same transaction as the
// insert, so no caller can create an order pointing at a worker that does not
// exist. On InvalidReference no record is created.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
// Returns an InvalidReferenceError when the supplied worker id does not resolve.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if workerID := cmd.WorkerID(); workerID != nil {
		exists, err := uow.WorkerRepository().Exists(ctx, *workerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewInvalidReferenceError("workerId", workerID.String())
		}
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Channel(),
		cmd.PromisedMinutes(),
		cmd.WorkerID(),
		cmd.CreatedAt(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
