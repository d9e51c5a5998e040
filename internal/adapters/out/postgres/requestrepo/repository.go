package requestrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/request"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM pickup request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pickup request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.PickupRequest) error {
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

// Update saves the status transition of an existing request.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *request.PickupRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.PickupRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickupRequest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByListingAndCourier retrieves the courier's pending request on
// the listing, if any.
func (r *GormRequestRepository) GetPendingByListingAndCourier(
	ctx context.Context,
	listingID, courierID kernel.UUID,
) (*request.PickupRequest, error) {
	if err := listingID.Validate(); err != nil {
		return nil, err
	}
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).First(&dto,
		"listing_id = ? AND courier_id = ? AND status = ?",
		listingID.Bytes(), courierID.Bytes(), request.Pending.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickupRequest", listingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingByListing retrieves every pending request on the listing.
func (r *GormRequestRepository) GetAllPendingByListing(
	ctx context.Context,
	listingID kernel.UUID,
) ([]*request.PickupRequest, error) {
	if err := listingID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	err := r.db.WithContext(ctx).Find(&dtos,
		"listing_id = ? AND status = ?", listingID.Bytes(), request.Pending.String()).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*request.PickupRequest, 0, len(dtos))
	for _, dto := range dtos {
		req, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}
