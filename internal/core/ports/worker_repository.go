// Package ports defines the persistence contracts the core depends on.
// Adapters implement these interfaces; the application layer consumes them
// through unit-of-work boundaries.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for worker aggregates.
type WorkerRepository interface {
	// Add persists a new worker aggregate to storage.
	Add(ctx context.Context, aggregate *worker.Worker) error

	// Get retrieves a worker aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// Exists reports whether a worker with the given id is stored.
	// Used for referential checks without materializing the aggregate.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
