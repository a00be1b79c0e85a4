package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllInventoryQueryHandler retrieves all stock items from the database.
type GetAllInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAllInventoryQueryHandler creates a handler for stock listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllInventoryQueryHandler(db *gorm.DB) GetAllInventoryQueryHandler {
	return GetAllInventoryQueryHandler{db: db}
}

// Handle executes the query to retrieve all inventory items.
// Returns a slice of item read models sorted by name, id as tie-breaker.
func (h GetAllInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetAllInventoryQuery,
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
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInventoryRows(rows)
}

// collectInventoryRows maps rows of the canonical item projection
// (id, sku, name, quantity, location) to read models.
func collectInventoryRows(rows *sql.Rows) ([]GetAllInventoryQueryResponse, error) {
	items := make([]GetAllInventoryQueryResponse, 0)

	for rows.Next() {
		var itemResp GetAllInventoryQueryResponse
		var id uuid.UUID

		err := rows.Scan(
			&id,
			&itemResp.Sku,
			&itemResp.Name,
			&itemResp.Quantity,
			&itemResp.Location,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ID = itemID
		items = append(items, itemResp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
