package entitlement

import (
	"errors"
	"fmt"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var (
	// ErrGrantIsNotConstructed is returned when a Grant was not created
	// through NewGrant or RestoreGrant.
	ErrGrantIsNotConstructed = errors.New("Grant must be created via NewGrant or RestoreGrant")

	// ErrQuotaExhausted is returned by Consume when the grant is inactive,
	// expired, or has no remaining usage. The check and the decrement are a
	// single step on the aggregate; the enclosing transaction makes them
	// atomic with the caller's transition.
	ErrQuotaExhausted = errors.New("entitlement quota exhausted")
)

// Grant is a time-bound usage allowance issued by a subscription purchase.
// A holder has at most one active grant at any instant; activating a new one
// deactivates all prior grants. Grants are mutated only by consumption and
// expiry, never resurrected.
type Grant struct {
	id             kernel.UUID
	holderID       kernel.UUID
	planID         kernel.UUID
	remainingUsage int
	isActive       bool
	expiresAt      time.Time
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewGrant activates a fresh grant for the holder from the given plan:
// full monthly quota, expiry now + plan duration, active. Deactivating the
// holder's prior grants is the ledger's job, not the aggregate's.
func NewGrant(id, holderID kernel.UUID, plan *Plan, now time.Time) (*Grant, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	g := &Grant{
		remainingUsage: plan.MonthlyLimit(),
		isActive:       true,
		expiresAt:      now.UTC().AddDate(0, 0, plan.DurationDays()),
		createdAt:      now.UTC(),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		g.setID(id),
		g.setHolderID(holderID),
		g.setPlanID(plan.ID()),
	); err != nil {
		return nil, err
	}

	return g, nil
}

// RestoreGrant reconstructs a grant from persistence.
func RestoreGrant(
	id, holderID, planID kernel.UUID,
	remainingUsage int,
	isActive bool,
	expiresAt time.Time,
	createdAt time.Time,
) (*Grant, error) {
	if remainingUsage < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("remainingUsage",
			fmt.Errorf("%d is negative", remainingUsage))
	}

	g := &Grant{
		remainingUsage: remainingUsage,
		isActive:       isActive,
		expiresAt:      expiresAt.UTC(),
		createdAt:      createdAt.UTC(),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		g.setID(id),
		g.setHolderID(holderID),
		g.setPlanID(planID),
	); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate ensures the grant was constructed through a factory function.
func (g *Grant) Validate() error {
	if g == nil {
		return ErrGrantIsNotConstructed
	}
	return g.guard.Validate(ErrGrantIsNotConstructed)
}

// ID returns the grant identifier.
func (g *Grant) ID() kernel.UUID { return g.id }

// HolderID returns the user the grant belongs to.
func (g *Grant) HolderID() kernel.UUID { return g.holderID }

// PlanID returns the plan the grant was issued from.
func (g *Grant) PlanID() kernel.UUID { return g.planID }

// RemainingUsage returns the unconsumed quota units.
func (g *Grant) RemainingUsage() int { return g.remainingUsage }

// IsActive reports whether the grant is the holder's current grant.
func (g *Grant) IsActive() bool { return g.isActive }

// ExpiresAt returns the expiry instant.
func (g *Grant) ExpiresAt() time.Time { return g.expiresAt }

// CreatedAt returns the activation instant.
func (g *Grant) CreatedAt() time.Time { return g.createdAt }

// IsExpired reports whether the grant's validity window has passed.
func (g *Grant) IsExpired(now time.Time) bool {
	return g.expiresAt.Before(now.UTC())
}

// CanConsume reports whether a unit could be consumed right now.
func (g *Grant) CanConsume(now time.Time) bool {
	return g.isActive && !g.IsExpired(now) && g.remainingUsage > 0
}

// Consume decrements the remaining usage by one. Fails with
// ErrQuotaExhausted when the grant is inactive, expired, or empty.
func (g *Grant) Consume(now time.Time) error {
	if !g.CanConsume(now) {
		return ErrQuotaExhausted
	}
	g.remainingUsage--
	return nil
}

// Deactivate retires the grant: it stops being active and its remaining
// usage drops to zero. Used both on expiry and when a newer grant replaces
// it. Idempotent.
func (g *Grant) Deactivate() {
	g.isActive = false
	g.remainingUsage = 0
}

func (g *Grant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *Grant) setHolderID(holderID kernel.UUID) error {
	if err := holderID.Validate(); err != nil {
		return fmt.Errorf("holderID: %w", err)
	}
	g.holderID = holderID
	return nil
}

func (g *Grant) setPlanID(planID kernel.UUID) error {
	if err := planID.Validate(); err != nil {
		return fmt.Errorf("planID: %w", err)
	}
	g.planID = planID
	return nil
}
