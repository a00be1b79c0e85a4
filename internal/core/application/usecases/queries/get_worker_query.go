package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetWorkerQueryIsNotConstructed = errors.New(
		"GetWorkerQuery must be created via NewGetWorkerQuery constructor",
	)
)

// GetWorkerQuery retrieves a single worker by id.
type GetWorkerQuery struct {
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkerQuery creates a query for a single worker.
// The worker id must be a valid non-zero UUID.
func NewGetWorkerQuery(workerID kernel.UUID) (GetWorkerQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetWorkerQuery{}, err
	}

	return GetWorkerQuery{
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkerQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerQueryIsNotConstructed)
}

// WorkerID returns the id of the requested worker.
func (q GetWorkerQuery) WorkerID() kernel.UUID {
	return q.workerID
}
