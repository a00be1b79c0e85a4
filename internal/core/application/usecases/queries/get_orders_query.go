package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders, optionally filtered by lifecycle status.
// A nil status means no filter.
//
// Example:
//
//	status := order.StatusPending
//	query, err := NewGetOrdersQuery(&status)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve orders.
// A supplied status must be a member of the known status set.
func NewGetOrdersQuery(status *order.Status) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// GetOrdersQueryResponse represents a single order read model.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	Status          order.Status
	Channel         order.Channel
	PromisedMinutes int
	PickTimeMinutes *int
	CreatedAt       time.Time
	WorkerID        *kernel.UUID
}
