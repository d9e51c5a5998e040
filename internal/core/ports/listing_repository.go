// Package ports defines the contracts between the allocation core and its
// infrastructure: repositories, the unit of work, and the notification sink.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for shipment listings.
type ListingRepository interface {
	// Add persists a new listing aggregate.
	Add(ctx context.Context, aggregate *listing.Listing) error

	// Update persists changes to an existing listing.
	Update(ctx context.Context, aggregate *listing.Listing) error

	// UpdateFromStatus persists the listing only if its stored status still
	// equals expected, as a single guarded statement. A stale status (for
	// example a concurrent approval won the race) fails with
	// listing.ErrAlreadyAssigned and writes nothing. This is the
	// compare-and-set that keeps approveRequest single-winner.
	UpdateFromStatus(ctx context.Context, aggregate *listing.Listing, expected listing.Status) error

	// Get retrieves a listing by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// GetAllOpen retrieves every listing currently in the open pool
	// (status Posted, which covers the Requested display set). Used by the
	// ranking recomputation batch.
	GetAllOpen(ctx context.Context) ([]*listing.Listing, error)
}
