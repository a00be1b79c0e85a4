package queries

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
		"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
	)
)

// GetLowStockItemsQuery retrieves stock items whose quantity is at or below
// a threshold. An item exactly at the threshold counts as low.
//
// Example:
//
//	query, err := NewGetLowStockItemsQuery(5)
//	if err != nil {
//	    return err
//	}
//
//	items, err := handler.Handle(ctx, query)
type GetLowStockItemsQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockItemsQuery creates a query to retrieve low-stock items.
// The threshold must not be negative.
func NewGetLowStockItemsQuery(threshold int) (GetLowStockItemsQuery, error) {
	if threshold < 0 {
		return GetLowStockItemsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"threshold",
			fmt.Errorf("%d is negative", threshold),
		)
	}

	return GetLowStockItemsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}

// Threshold returns the inclusive low-stock cutoff.
func (q GetLowStockItemsQuery) Threshold() int {
	return q.threshold
}
