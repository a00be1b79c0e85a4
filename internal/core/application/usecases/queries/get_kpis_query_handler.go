package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetKpisQueryHandler computes windowed KPIs.
// The handler scopes the order population with SQL; the reduction formulas
// live in the KpiCalculator domain service.
type GetKpisQueryHandler struct {
	db         *gorm.DB
	calculator services.KpiCalculator
}

// NewGetKpisQueryHandler creates a handler for KPI queries.
// Requires a GORM database connection for query execution.
func NewGetKpisQueryHandler(db *gorm.DB) GetKpisQueryHandler {
	return GetKpisQueryHandler{
		db:         db,
		calculator: services.NewKpiCalculator(),
	}
}

// Handle executes the query and reduces the windowed orders to KPI figures.
func (h GetKpisQueryHandler) Handle(
	ctx context.Context,
	query GetKpisQuery,
) (GetKpisQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetKpisQueryResponse{}, err
	}

	upper := query.Now()
	lower := upper.Add(-query.Window())

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
		WHERE created_at >= ? AND created_at < ?
	`, lower, upper).Rows()
	if err != nil {
		return GetKpisQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return GetKpisQueryResponse{}, scanErr
		}

		aggregate, restoreErr := restoreOrderAggregate(orderResp)
		if restoreErr != nil {
			return GetKpisQueryResponse{}, restoreErr
		}
		orders = append(orders, aggregate)
	}

	if err = rows.Err(); err != nil {
		return GetKpisQueryResponse{}, err
	}

	summary, err := h.calculator.Summarize(orders)
	if err != nil {
		return GetKpisQueryResponse{}, err
	}

	return GetKpisQueryResponse{
		OrdersCount:        summary.OrdersCount,
		CompletedCount:     summary.CompletedCount,
		OnTimeCount:        summary.OnTimeCount,
		OnTimeRate:         summary.OnTimeRate,
		AvgPickTimeMinutes: summary.AvgPickTimeMinutes,
	}, nil
}
