package transporterrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/transporter"
	"commerce/internal/pkg/errs"
)

// GormTransporterRepository implements TransporterRepository using GORM.
type GormTransporterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransporterRepository creates a new GORM transporter repository.
func NewGormTransporterRepository(db *gorm.DB, tracker aggregateTracker) *GormTransporterRepository {
	return &GormTransporterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transporter to the database.
func (r *GormTransporterRepository) Add(ctx context.Context, aggregate *transporter.Transporter) error {
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

// Get retrieves a transporter by ID.
func (r *GormTransporterRepository) Get(ctx context.Context, id kernel.UUID) (*transporter.Transporter, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransporterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transporter", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a transporter with the given ID is stored.
func (r *GormTransporterRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&TransporterDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	return count > 0, err
}
