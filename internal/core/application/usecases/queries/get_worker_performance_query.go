package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetWorkerPerformanceQueryIsNotConstructed = errors.New(
		"GetWorkerPerformanceQuery must be created via NewGetWorkerPerformanceQuery constructor",
	)
)

// GetWorkerPerformanceQuery computes one worker's all-time performance
// figures over every order ever assigned to them.
type GetWorkerPerformanceQuery struct {
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkerPerformanceQuery creates a query for a worker's performance.
// The worker id must be well-formed; whether the worker exists is checked by
// the handler against the record store.
func NewGetWorkerPerformanceQuery(workerID kernel.UUID) (GetWorkerPerformanceQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetWorkerPerformanceQuery{}, err
	}

	return GetWorkerPerformanceQuery{
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkerPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerPerformanceQueryIsNotConstructed)
}

// WorkerID returns the identifier of the worker under review.
func (q GetWorkerPerformanceQuery) WorkerID() kernel.UUID {
	return q.workerID
}

// GetWorkerPerformanceQueryResponse carries a worker's all-time figures.
// Semantics of OnTimeRate and AvgPickTimeMinutes match GetKpisQueryResponse.
type GetWorkerPerformanceQueryResponse struct {
	WorkerID           kernel.UUID
	OrdersAssigned     int
	OnTimeOrders       int
	OnTimeRate         float64
	AvgPickTimeMinutes *float64
}
