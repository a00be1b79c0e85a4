package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetAllInventoryQueryIsNotConstructed = errors.New(
		"GetAllInventoryQuery must be created via NewGetAllInventoryQuery constructor",
	)
)

// GetAllInventoryQuery retrieves the full stock list.
type GetAllInventoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllInventoryQuery creates a query to retrieve all inventory items.
// This is a parameterless query.
func NewGetAllInventoryQuery() GetAllInventoryQuery {
	return GetAllInventoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAllInventoryQueryIsNotConstructed)
}

// GetAllInventoryQueryResponse represents a single stock item read model.
type GetAllInventoryQueryResponse struct {
	ID       kernel.UUID
	Sku      string
	Name     string
	Quantity int
	Location string
}
