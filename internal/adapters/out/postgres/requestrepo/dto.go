// Package requestrepo persists pickup requests: DTO mapping plus a GORM
// repository implementing ports.RequestRepository.
package requestrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/request"
)

// RequestDTO represents the database structure for pickup requests.
type RequestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID uuid.UUID `gorm:"type:uuid;index"`
	CourierID uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"index"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to "pickup_requests".
func (RequestDTO) TableName() string {
	return "pickup_requests"
}

func fromDomain(aggregate *request.PickupRequest) RequestDTO {
	return RequestDTO{
		ID:        aggregate.ID().Bytes(),
		ListingID: aggregate.ListingID().Bytes(),
		CourierID: aggregate.CourierID().Bytes(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto RequestDTO) (*request.PickupRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	status, err := request.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return request.RestorePickupRequest(id, listingID, courierID, status, dto.CreatedAt)
}
