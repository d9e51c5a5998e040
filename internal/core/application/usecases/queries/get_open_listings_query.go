// Package queries contains the read side of the allocation core: raw SQL
// read models that bypass the aggregates and return presentation-shaped
// responses.
package queries

import (
	"errors"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrGetOpenListingsQueryIsNotConstructed = errors.New(
	"GetOpenListingsQuery must be created via NewGetOpenListingsQuery constructor",
)

// GetOpenListingsQuery retrieves the marketplace feed: every open listing
// ordered by ranking score, then recency.
type GetOpenListingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenListingsQuery creates a parameterless feed query.
func NewGetOpenListingsQuery() GetOpenListingsQuery {
	return GetOpenListingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenListingsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenListingsQueryIsNotConstructed)
}

// GetOpenListingsQueryResponse is one feed row. DisplayStatus already folds
// pending requests in: an open listing with at least one pending request
// reads as REQUESTED.
type GetOpenListingsQueryResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	PickupCountry string
	DestCountry   string
	Address       string
	ReceiverName  string
	Weight        float64
	Fee           float64
	RankingScore  float64
	DisplayStatus string
	CreatedAt     time.Time
}
