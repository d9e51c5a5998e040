package courierrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/courier"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier profile repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier profile to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Profile) error {
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

// Update saves an existing courier profile to the database. Zeroed statistics
// are written as-is, so the full column set is selected explicitly.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
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

// Get retrieves a courier profile by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courierProfile", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
