package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
)

// GetListingRequestsQueryHandler reads the candidate list for one listing.
type GetListingRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetListingRequestsQueryHandler creates a handler for the candidate query.
func NewGetListingRequestsQueryHandler(db *gorm.DB) GetListingRequestsQueryHandler {
	return GetListingRequestsQueryHandler{db: db}
}

// Handle returns every request on the listing, best-rated couriers first.
func (h GetListingRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetListingRequestsQuery,
) ([]GetListingRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetListingRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.courier_id,
			c.name,
			c.rating,
			c.completed_deliveries,
			c.average_delivery_hours,
			r.status,
			r.created_at
		FROM pickup_requests r
		JOIN courier_profiles c ON c.id = r.courier_id
		WHERE r.listing_id = ?
		ORDER BY c.rating DESC, r.created_at
	`, query.ListingID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetListingRequestsQueryResponse
		var id, courierID uuid.UUID

		err = rows.Scan(
			&id,
			&courierID,
			&resp.CourierName,
			&resp.CourierRating,
			&resp.CompletedDeliveries,
			&resp.AverageDeliveryHours,
			&resp.Status,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.RequestID = requestID

		courier, idErr := kernel.UUIDFromBytes(courierID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CourierID = courier

		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
