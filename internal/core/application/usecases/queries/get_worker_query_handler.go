package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWorkerQueryHandler retrieves a single worker read model.
type GetWorkerQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerQueryHandler creates a handler for single worker lookups.
// Requires a GORM database connection for query execution.
func NewGetWorkerQueryHandler(db *gorm.DB) GetWorkerQueryHandler {
	return GetWorkerQueryHandler{db: db}
}

// Handle executes the query to retrieve one worker.
// Returns an ObjectNotFoundError when the worker id is unknown.
func (h GetWorkerQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerQuery,
) (GetAllWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllWorkersQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			role,
			shift
		FROM workers
		WHERE id = ?
	`, query.WorkerID().Bytes()).Row()

	workerResp := GetAllWorkersQueryResponse{ID: query.WorkerID()}

	err := row.Scan(&workerResp.Name, &workerResp.Role, &workerResp.Shift)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAllWorkersQueryResponse{}, errs.NewObjectNotFoundError("workerId", query.WorkerID().String())
	}
	if err != nil {
		return GetAllWorkersQueryResponse{}, err
	}

	return workerResp, nil
}
