package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves orders from the database, newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders.
// When the query carries a status filter only matching orders are returned.
// Results are sorted by creation time descending, id as tie-breaker.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows *sql.Rows
	var err error

	if status := query.Status(); status != nil {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT
				id,
				status,
				channel,
				promised_minutes,
				pick_time_minutes,
				created_at,
				worker_id
			FROM orders
			WHERE status = ?
			ORDER BY created_at DESC, id
		`, *status).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT
				id,
				status,
				channel,
				promised_minutes,
				pick_time_minutes,
				created_at,
				worker_id
			FROM orders
			ORDER BY created_at DESC, id
		`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow maps one row of the canonical order projection
// (id, status, channel, promised_minutes, pick_time_minutes, created_at,
// worker_id) to a read model. Shared by every order-scanning query handler.
func scanOrderRow(rows *sql.Rows) (GetOrdersQueryResponse, error) {
	var orderResp GetOrdersQueryResponse
	var id uuid.UUID
	var statusValue, channelValue int
	var pickTime *int
	var workerID uuid.NullUUID

	err := rows.Scan(
		&id,
		&statusValue,
		&channelValue,
		&orderResp.PromisedMinutes,
		&pickTime,
		&orderResp.CreatedAt,
		&workerID,
	)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetOrdersQueryResponse{}, idErr
	}
	orderResp.ID = orderID
	orderResp.Status = order.Status(statusValue)
	orderResp.Channel = order.Channel(channelValue)
	orderResp.PickTimeMinutes = pickTime

	if workerID.Valid {
		assignee, werr := kernel.UUIDFromBytes(workerID.UUID[:])
		if werr != nil {
			return GetOrdersQueryResponse{}, werr
		}
		orderResp.WorkerID = &assignee
	}

	return orderResp, nil
}

// restoreOrderAggregate rebuilds a domain aggregate from a scanned read model
// so the analytics services can reduce it.
func restoreOrderAggregate(resp GetOrdersQueryResponse) (*order.Order, error) {
	return order.RestoreOrder(
		resp.ID,
		resp.Status,
		resp.Channel,
		resp.PromisedMinutes,
		resp.PickTimeMinutes,
		resp.CreatedAt,
		resp.WorkerID,
	)
}
