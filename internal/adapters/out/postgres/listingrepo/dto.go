// Package listingrepo persists shipment listings: DTO mapping plus a GORM
// repository implementing ports.ListingRepository.
package listingrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
)

// ListingDTO represents the database structure for shipment listings. Status
// is stored in its wire form; the display-only REQUESTED value is never
// written.
type ListingDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID           uuid.UUID  `gorm:"type:uuid;index"`
	AssignedCourierID *uuid.UUID `gorm:"type:uuid;index"`
	Route             RouteDTO   `gorm:"embedded"`
	Weight            float64
	Fee               float64
	RankingScore      float64 `gorm:"index"`
	Status            string  `gorm:"index"`
	CreatedAt         time.Time
	PickedAt          *time.Time
}

// TableName overrides GORM's default naming to "listings".
func (ListingDTO) TableName() string {
	return "listings"
}

// RouteDTO is the embedded route value within the listings table.
type RouteDTO struct {
	PickupCountry string
	DestCountry   string
	Address       string
	ReceiverName  string
	ReceiverPhone string
}

func fromDomain(aggregate *listing.Listing) ListingDTO {
	var courierID *uuid.UUID
	if id := aggregate.AssignedCourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return ListingDTO{
		ID:                aggregate.ID().Bytes(),
		OwnerID:           aggregate.OwnerID().Bytes(),
		AssignedCourierID: courierID,
		Route: RouteDTO{
			PickupCountry: aggregate.Route().PickupCountry(),
			DestCountry:   aggregate.Route().DestCountry(),
			Address:       aggregate.Route().Address(),
			ReceiverName:  aggregate.Route().ReceiverName(),
			ReceiverPhone: aggregate.Route().ReceiverPhone(),
		},
		Weight:       aggregate.Weight(),
		Fee:          aggregate.Fee(),
		RankingScore: aggregate.RankingScore(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
		PickedAt:     aggregate.PickedAt(),
	}
}

func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.AssignedCourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.AssignedCourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	route, err := listing.NewRoute(
		dto.Route.PickupCountry,
		dto.Route.DestCountry,
		dto.Route.Address,
		dto.Route.ReceiverName,
		dto.Route.ReceiverPhone,
	)
	if err != nil {
		return nil, err
	}

	status, err := listing.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(
		id,
		ownerID,
		courierID,
		route,
		dto.Weight,
		dto.Fee,
		dto.RankingScore,
		status,
		dto.CreatedAt,
		dto.PickedAt,
	)
}
