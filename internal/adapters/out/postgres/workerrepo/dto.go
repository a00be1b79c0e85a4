// Package workerrepo provides data transfer objects and mapping functions for worker persistence.
// This package implements the repository pattern for the worker domain aggregate, handling
// the conversion between domain entities and database representations.
package workerrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// WorkerDTO represents the database structure for persisting worker aggregates.
type WorkerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Role  string
	Shift string
}

// TableName specifies the database table name for worker entities.
// Overrides GORM's default naming convention to use "workers".
func (WorkerDTO) TableName() string {
	return "workers"
}

// fromDomain converts a worker domain aggregate to its database representation.
func fromDomain(aggregate *worker.Worker) WorkerDTO {
	return WorkerDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Role:  aggregate.Role(),
		Shift: aggregate.Shift(),
	}
}

// toDomain converts a database DTO to a worker domain aggregate.
func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return worker.RestoreWorker(id, dto.Name, dto.Role, dto.Shift)
}
