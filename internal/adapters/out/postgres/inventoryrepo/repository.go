package inventoryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory item to the database.
// A duplicate sku violates the unique index and surfaces as a database error.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Item) error {
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

// Update saves an existing inventory item to the database.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an inventory item by ID.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySku retrieves an inventory item by its natural key.
func (r *GormInventoryRepository) GetBySku(ctx context.Context, sku string) (*inventory.Item, error) {
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sku", sku)
		}
		return nil, err
	}

	return toDomain(dto)
}
