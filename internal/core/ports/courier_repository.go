package ports

import (
	"context"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/courier"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier
// performance profiles.
type CourierRepository interface {
	// Add persists a new courier profile.
	Add(ctx context.Context, aggregate *courier.Profile) error

	// Update persists statistic changes to an existing profile.
	Update(ctx context.Context, aggregate *courier.Profile) error

	// Get retrieves a profile by courier identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Profile, error)
}
