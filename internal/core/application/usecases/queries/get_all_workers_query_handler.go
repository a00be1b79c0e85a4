package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllWorkersQueryHandler retrieves all workers from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllWorkersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllWorkersQueryHandler creates a handler for worker roster queries.
// Requires a GORM database connection for query execution.
func NewGetAllWorkersQueryHandler(db *gorm.DB) GetAllWorkersQueryHandler {
	return GetAllWorkersQueryHandler{db: db}
}

// Handle executes the query to retrieve all workers.
// Returns a slice of worker read models sorted by name.
func (h GetAllWorkersQueryHandler) Handle(
	ctx context.Context,
	query GetAllWorkersQuery,
) ([]GetAllWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workers := make([]GetAllWorkersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			role,
			shift
		FROM workers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var workerResp GetAllWorkersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&workerResp.Name,
			&workerResp.Role,
			&workerResp.Shift,
		)
		if err != nil {
			return nil, err
		}

		workerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		workerResp.ID = workerID
		workers = append(workers, workerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}
