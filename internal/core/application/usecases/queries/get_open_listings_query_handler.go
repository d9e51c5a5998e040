package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/request"
)

// GetOpenListingsQueryHandler reads the marketplace feed straight from the
// database, folding the pending-request flag into a display status.
type GetOpenListingsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenListingsQueryHandler creates a handler for the feed query.
func NewGetOpenListingsQueryHandler(db *gorm.DB) GetOpenListingsQueryHandler {
	return GetOpenListingsQueryHandler{db: db}
}

// Handle returns every open listing ordered by ranking score descending,
// with creation time as the tie-break (newer first).
func (h GetOpenListingsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenListingsQuery,
) ([]GetOpenListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listings := make([]GetOpenListingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.owner_id,
			l.pickup_country,
			l.dest_country,
			l.address,
			l.receiver_name,
			l.weight,
			l.fee,
			l.ranking_score,
			l.created_at,
			EXISTS (
				SELECT 1 FROM pickup_requests r
				WHERE r.listing_id = l.id AND r.status = ?
			) AS has_pending
		FROM listings l
		WHERE l.status = ?
		ORDER BY l.ranking_score DESC, l.created_at DESC
	`, request.Pending.String(), listing.Posted.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenListingsQueryResponse
		var id, ownerID uuid.UUID
		var hasPending bool

		err = rows.Scan(
			&id,
			&ownerID,
			&resp.PickupCountry,
			&resp.DestCountry,
			&resp.Address,
			&resp.ReceiverName,
			&resp.Weight,
			&resp.Fee,
			&resp.RankingScore,
			&resp.CreatedAt,
			&hasPending,
		)
		if err != nil {
			return nil, err
		}

		listingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = listingID

		owner, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OwnerID = owner

		resp.DisplayStatus = listing.Posted.String()
		if hasPending {
			resp.DisplayStatus = listing.Requested.String()
		}

		listings = append(listings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
