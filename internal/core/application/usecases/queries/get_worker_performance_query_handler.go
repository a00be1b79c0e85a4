package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWorkerPerformanceQueryHandler computes a worker's all-time performance.
// An unknown worker surfaces as NotFound; a known worker with no orders
// yields zero counts with a 0.0 rate and an absent average.
type GetWorkerPerformanceQueryHandler struct {
	db         *gorm.DB
	calculator services.PerformanceCalculator
}

// NewGetWorkerPerformanceQueryHandler creates a handler for worker
// performance queries. Requires a GORM database connection.
func NewGetWorkerPerformanceQueryHandler(db *gorm.DB) GetWorkerPerformanceQueryHandler {
	return GetWorkerPerformanceQueryHandler{
		db:         db,
		calculator: services.NewPerformanceCalculator(),
	}
}

// Handle executes the query and reduces the worker's orders to performance
// figures. Returns an ObjectNotFoundError when the worker does not resolve.
func (h GetWorkerPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerPerformanceQuery,
) (GetWorkerPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkerPerformanceQueryResponse{}, err
	}

	var workerCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(1) FROM workers WHERE id = ?
	`, query.WorkerID().Bytes()).Scan(&workerCount).Error
	if err != nil {
		return GetWorkerPerformanceQueryResponse{}, err
	}
	if workerCount == 0 {
		return GetWorkerPerformanceQueryResponse{},
			errs.NewObjectNotFoundError("workerId", query.WorkerID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			channel,
			promised_minutes,
			pick_time_minutes,
			created_at,
			worker_id
		FROM orders
		WHERE worker_id = ?
	`, query.WorkerID().Bytes()).Rows()
	if err != nil {
		return GetWorkerPerformanceQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return GetWorkerPerformanceQueryResponse{}, scanErr
		}

		aggregate, restoreErr := restoreOrderAggregate(orderResp)
		if restoreErr != nil {
			return GetWorkerPerformanceQueryResponse{}, restoreErr
		}
		orders = append(orders, aggregate)
	}

	if err = rows.Err(); err != nil {
		return GetWorkerPerformanceQueryResponse{}, err
	}

	summary, err := h.calculator.Summarize(query.WorkerID(), orders)
	if err != nil {
		return GetWorkerPerformanceQueryResponse{}, err
	}

	return GetWorkerPerformanceQueryResponse{
		WorkerID:           summary.WorkerID,
		OrdersAssigned:     summary.OrdersAssigned,
		OnTimeOrders:       summary.OnTimeOrders,
		OnTimeRate:         summary.OnTimeRate,
		AvgPickTimeMinutes: summary.AvgPickTimeMinutes,
	}, nil
}
