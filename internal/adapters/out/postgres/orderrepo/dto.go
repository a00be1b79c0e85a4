// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status, creation time, and worker assignment.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Status          int        `gorm:"index"`
	Channel         int
	PromisedMinutes int
	PickTimeMinutes *int
	CreatedAt       time.Time  `gorm:"index"`
	WorkerID        *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional pick time and worker assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var workerID *uuid.UUID
	if id := aggregate.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Status:          int(aggregate.Status()),
		Channel:         int(aggregate.Channel()),
		PromisedMinutes: aggregate.PromisedMinutes(),
		PickTimeMinutes: aggregate.PickTimeMinutes(),
		CreatedAt:       aggregate.CreatedAt(),
		WorkerID:        workerID,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, pick time, and worker
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}

		workerID = &wID
	}

	return order.RestoreOrder(
		id,
		order.Status(dto.Status),
		order.Channel(dto.Channel),
		dto.PromisedMinutes,
		dto.PickTimeMinutes,
		dto.CreatedAt,
		workerID,
	)
}
