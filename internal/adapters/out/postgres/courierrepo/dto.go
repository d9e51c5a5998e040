// Package courierrepo persists courier profiles: DTO mapping plus a GORM
// repository implementing ports.CourierRepository.
package courierrepo

import (
	"github.com/google/uuid"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/courier"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for courier profiles.
type CourierDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string
	Rating               float64
	CompletedDeliveries  int
	AverageDeliveryHours float64
}

// TableName overrides GORM's default naming to "courier_profiles".
func (CourierDTO) TableName() string {
	return "courier_profiles"
}

func fromDomain(aggregate *courier.Profile) CourierDTO {
	return CourierDTO{
		ID:                   aggregate.ID().Bytes(),
		Name:                 aggregate.Name(),
		Rating:               aggregate.Rating(),
		CompletedDeliveries:  aggregate.CompletedDeliveries(),
		AverageDeliveryHours: aggregate.AverageDeliveryHours(),
	}
}

func toDomain(dto CourierDTO) (*courier.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreProfile(
		id,
		dto.Name,
		dto.Rating,
		dto.CompletedDeliveries,
		dto.AverageDeliveryHours,
	)
}
