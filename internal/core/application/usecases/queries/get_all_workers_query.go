package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetAllWorkersQueryIsNotConstructed = errors.New(
		"GetAllWorkersQuery must be created via NewGetAllWorkersQuery constructor",
	)
)

// GetAllWorkersQuery retrieves the full worker roster.
//
// Example:
//
//	query := NewGetAllWorkersQuery()
//	handler := NewGetAllWorkersQueryHandler(db)
//
//	workers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get workers: %w", err)
//	}
//
//	fmt.Printf("Found %d workers on shift\n", len(workers))
type GetAllWorkersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllWorkersQuery creates a query to retrieve all workers.
// This is a parameterless query.
func NewGetAllWorkersQuery() GetAllWorkersQuery {
	return GetAllWorkersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllWorkersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWorkersQueryIsNotConstructed)
}

// GetAllWorkersQueryResponse represents a single worker read model.
type GetAllWorkersQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Role  string
	Shift string
}
