package queries

import (
	"errors"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrGetActiveGrantQueryIsNotConstructed = errors.New(
	"GetActiveGrantQuery must be created via NewGetActiveGrantQuery constructor",
)

// GetActiveGrantQuery retrieves the holder's current grant with its plan
// details, for the account page and quota display.
type GetActiveGrantQuery struct { //nolint:recvcheck //using for validation
	holderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveGrantQuery creates a query for the holder's active grant.
func NewGetActiveGrantQuery(holderID kernel.UUID) (GetActiveGrantQuery, error) {
	if err := holderID.Validate(); err != nil {
		return GetActiveGrantQuery{}, err
	}

	return GetActiveGrantQuery{
		holderID: holderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveGrantQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveGrantQueryIsNotConstructed)
}

// HolderID returns the user whose grant is fetched.
func (q GetActiveGrantQuery) HolderID() kernel.UUID { return q.holderID }

// GetActiveGrantQueryResponse is the holder's current entitlement snapshot.
type GetActiveGrantQueryResponse struct {
	GrantID        kernel.UUID
	PlanName       string
	PlanRole       string
	IsPremium      bool
	RemainingUsage int
	ExpiresAt      time.Time
}
