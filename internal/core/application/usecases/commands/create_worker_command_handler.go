package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/worker"
)

// CreateWorkerCommandHandler handles the business logic for worker registration.
// Worker creation always succeeds for a valid command; names carry no
// uniqueness constraint.
type CreateWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewCreateWorkerCommandHandler creates a handler for worker registration.
// Requires a WorkerUoWFactory for transactional persistence.
func NewCreateWorkerCommandHandler(uowFactory WorkerUoWFactory) CreateWorkerCommandHandler {
	return CreateWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the worker registration command and returns the created worker.
func (h *CreateWorkerCommandHandler) Handle(ctx context.Context, cmd CreateWorkerCommand) (*worker.Worker, error) {
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

	newWorker, err := worker.NewWorker(cmd.WorkerID(), cmd.Name(), cmd.Role(), cmd.Shift())
	if err != nil {
		return nil, err
	}

	if err = uow.WorkerRepository().Add(ctx, newWorker); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newWorker, nil
}
