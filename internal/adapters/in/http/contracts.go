package http

import (
	"encoding/json"
	"time"
)

// Optional is a JSON field that distinguishes omitted from explicit null.
// An omitted field leaves Defined false; "field": null sets Defined with a
// nil Value; any other value sets Defined with a non-nil Value. The
// distinction drives partial-update semantics on PATCH bodies.
type Optional[T any] struct {
	Value   *T
	Defined bool
}

// UnmarshalJSON is only invoked for keys present in the body, so its mere
// execution marks the field as defined.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Defined = true

	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON round-trips the value; an undefined field marshals as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Defined || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// CreateWorkerRequest is the POST /workers body.
type CreateWorkerRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Shift string `json:"shift"`
}

// WorkerResponse is a worker rendered for the wire.
type WorkerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Shift string `json:"shift"`
}

// CreateOrderRequest is the POST /orders body.
type CreateOrderRequest struct {
	Channel         string  `json:"channel"`
	PromisedMinutes int     `json:"promisedMinutes"`
	WorkerID        *string `json:"workerId"`
}

// UpdateOrderRequest is the PATCH /orders/:id body. PickTimeMinutes and
// WorkerID accept explicit null to clear the field.
type UpdateOrderRequest struct {
	Status          *string          `json:"status"`
	PickTimeMinutes Optional[int]    `json:"pickTimeMinutes"`
	WorkerID        Optional[string] `json:"workerId"`
}

// OrderResponse is an order rendered for the wire.
type OrderResponse struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	Channel         string    `json:"channel"`
	PromisedMinutes int       `json:"promisedMinutes"`
	PickTimeMinutes *int      `json:"pickTimeMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	WorkerID        *string   `json:"workerId"`
}

// CreateInventoryItemRequest is the POST /inventory body.
type CreateInventoryItemRequest struct {
	Sku      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
}

// UpdateInventoryItemRequest is the PATCH /inventory/:id body.
// Omitted fields are left untouched; explicit null is not meaningful here.
type UpdateInventoryItemRequest struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
	Location *string `json:"location"`
}

// InventoryItemResponse is an inventory item rendered for the wire.
type InventoryItemResponse struct {
	ID       string `json:"id"`
	Sku      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
}

// KpisResponse is the GET /kpis/today payload.
type KpisResponse struct {
	OrdersCount        int      `json:"ordersCount"`
	CompletedCount     int      `json:"completedCount"`
	OnTimeCount        int      `json:"onTimeCount"`
	OnTimeRate         float64  `json:"onTimeRate"`
	AvgPickTimeMinutes *float64 `json:"avgPickTimeMinutes"`
}

// WorkerPerformanceResponse is the GET /workers/:id/performance payload.
type WorkerPerformanceResponse struct {
	WorkerID           string   `json:"workerId"`
	OrdersAssigned     int      `json:"ordersAssigned"`
	OnTimeOrders       int      `json:"onTimeOrders"`
	OnTimeRate         float64  `json:"onTimeRate"`
	AvgPickTimeMinutes *float64 `json:"avgPickTimeMinutes"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
