package ports

import (
	"context"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/entitlement"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
)

// EntitlementRepository defines the persistence contract for subscription
// plans and grants.
type EntitlementRepository interface {
	// AddPlan persists a new subscription plan.
	AddPlan(ctx context.Context, plan *entitlement.Plan) error

	// GetPlan retrieves a plan by its identifier.
	GetPlan(ctx context.Context, id kernel.UUID) (*entitlement.Plan, error)

	// AddGrant persists a newly activated grant.
	AddGrant(ctx context.Context, grant *entitlement.Grant) error

	// UpdateGrant persists consumption or deactivation of a grant.
	UpdateGrant(ctx context.Context, grant *entitlement.Grant) error

	// GetGrant retrieves a grant by its identifier.
	GetGrant(ctx context.Context, id kernel.UUID) (*entitlement.Grant, error)

	// GetConsumableGrant retrieves the holder's single active, non-expired
	// grant with remaining usage, or an errs.ObjectNotFoundError. The read
	// participates in the caller's transaction so the subsequent decrement
	// commits atomically with the caller's transition.
	GetConsumableGrant(ctx context.Context, holderID kernel.UUID, now time.Time) (*entitlement.Grant, error)

	// GetActiveGrantsByHolder retrieves every grant still flagged active for
	// the holder. Activation deactivates all of them before adding the new
	// grant, upholding the one-active-grant invariant.
	GetActiveGrantsByHolder(ctx context.Context, holderID kernel.UUID) ([]*entitlement.Grant, error)

	// GetExpiredActiveGrants retrieves every active grant whose expiry lies
	// before now. Used by the maintenance batch.
	GetExpiredActiveGrants(ctx context.Context, now time.Time) ([]*entitlement.Grant, error)

	// HasActivePremiumGrant reports whether the holder owns an active,
	// non-expired grant on a premium plan. Drives the ranking boost.
	HasActivePremiumGrant(ctx context.Context, holderID kernel.UUID, now time.Time) (bool, error)
}
