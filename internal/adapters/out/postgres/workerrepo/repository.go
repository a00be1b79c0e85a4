package workerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/worker"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkerRepository implements WorkerRepository using GORM.
type GormWorkerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkerRepository creates a new GORM worker repository.
func NewGormWorkerRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkerRepository {
	return &GormWorkerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new worker to the database.
func (r *GormWorkerRepository) Add(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a worker by ID.
func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a worker with the given ID is stored.
func (r *GormWorkerRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&WorkerDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
