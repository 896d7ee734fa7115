package supplierrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/supplier"
	"commerce/internal/pkg/errs"
)

// GormSupplierRepository implements SupplierRepository using GORM.
type GormSupplierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSupplierRepository creates a new GORM supplier repository.
func NewGormSupplierRepository(db *gorm.DB, tracker aggregateTracker) *GormSupplierRepository {
	return &GormSupplierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new supplier to the database.
func (r *GormSupplierRepository) Add(ctx context.Context, aggregate *supplier.Supplier) error {
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

// Get retrieves a supplier by ID.
func (r *GormSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SupplierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supplier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a supplier with the given ID is stored.
func (r *GormSupplierRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&SupplierDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	return count > 0, err
}
