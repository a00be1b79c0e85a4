package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetLowStockItemsQueryHandler retrieves stock items at or below a threshold.
// Reuses the inventory read model; only the population differs.
type GetLowStockItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockItemsQueryHandler creates a handler for low-stock queries.
// Requires a GORM database connection for query execution.
func NewGetLowStockItemsQueryHandler(db *gorm.DB) GetLowStockItemsQueryHandler {
	return GetLowStockItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve low-stock items.
// Returns item read models with quantity <= threshold, sorted by name then id.
func (h GetLowStockItemsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockItemsQuery,
) ([]GetAllInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			quantity,
			location
		FROM inventory_items
		WHERE quantity <= ?
		ORDER BY name, id
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInventoryRows(rows)
}
