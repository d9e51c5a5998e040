package queries

import (
	"errors"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrGetListingRequestsQueryIsNotConstructed = errors.New(
	"GetListingRequestsQuery must be created via NewGetListingRequestsQuery constructor",
)

// GetListingRequestsQuery retrieves the pickup requests on one listing,
// joined with each courier's profile so the sender can compare candidates.
type GetListingRequestsQuery struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetListingRequestsQuery creates a query for the listing's requests.
func NewGetListingRequestsQuery(listingID kernel.UUID) (GetListingRequestsQuery, error) {
	if err := listingID.Validate(); err != nil {
		return GetListingRequestsQuery{}, err
	}

	return GetListingRequestsQuery{
		listingID: listingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetListingRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetListingRequestsQueryIsNotConstructed)
}

// ListingID returns the listing whose requests are fetched.
func (q GetListingRequestsQuery) ListingID() kernel.UUID { return q.listingID }

// GetListingRequestsQueryResponse is one candidate row: the request plus the
// bidding courier's track record.
type GetListingRequestsQueryResponse struct {
	RequestID            kernel.UUID
	CourierID            kernel.UUID
	CourierName          string
	CourierRating        float64
	CompletedDeliveries  int
	AverageDeliveryHours float64
	Status               string
	CreatedAt            time.Time
}
