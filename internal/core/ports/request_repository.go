package ports

import (
	"context"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for pickup requests.
type RequestRepository interface {
	// Add persists a new pickup request.
	Add(ctx context.Context, aggregate *request.PickupRequest) error

	// Update persists the status transition of an existing request.
	Update(ctx context.Context, aggregate *request.PickupRequest) error

	// Get retrieves a request by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.PickupRequest, error)

	// GetPendingByListingAndCourier retrieves the courier's pending request
	// on the listing, if any. Backs the idempotence of submitRequest: one
	// pending request per courier per listing.
	GetPendingByListingAndCourier(
		ctx context.Context,
		listingID, courierID kernel.UUID,
	) (*request.PickupRequest, error)

	// GetAllPendingByListing retrieves every pending request on the listing.
	// Arbitration rejects all of them except the winner in one atomic unit.
	GetAllPendingByListing(ctx context.Context, listingID kernel.UUID) ([]*request.PickupRequest, error)
}
