package entitlement

import (
	"errors"
	"fmt"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

// Role distinguishes which side of the marketplace a plan meters.
type Role int

const (
	// RoleUnknown catches uninitialized values; never valid.
	RoleUnknown Role = iota

	// RoleSender plans meter listing creation.
	RoleSender

	// RoleCourier plans meter approved pickups.
	RoleCourier
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		RoleSender:  "SENDER",
		RoleCourier: "COURIER",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid plan role", s))
}

// String implements fmt.Stringer; safe to call on any value.
func (r Role) String() string {
	if str, ok := roleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks membership in the defined enum.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid plan role", int(r)))
	}
	return nil
}

// ErrPlanIsNotConstructed is returned when a Plan was not created through
// NewPlan or RestorePlan.
var ErrPlanIsNotConstructed = errors.New("Plan must be created via NewPlan or RestorePlan")

// Plan describes a purchasable subscription tier: how many ledger units it
// grants per month, how long a grant lives, and whether holders receive the
// premium ranking boost.
type Plan struct {
	id           kernel.UUID
	name         string
	role         Role
	monthlyLimit int
	durationDays int
	isPremium    bool
	price        float64

	guard guard.ConstructorGuard
}

// NewPlan creates a validated subscription plan.
func NewPlan(
	id kernel.UUID,
	name string,
	role Role,
	monthlyLimit int,
	durationDays int,
	isPremium bool,
	price float64,
) (*Plan, error) {
	p := &Plan{
		isPremium: isPremium,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setRole(role),
		p.setMonthlyLimit(monthlyLimit),
		p.setDurationDays(durationDays),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePlan reconstructs a plan from persistence.
func RestorePlan(
	id kernel.UUID,
	name string,
	role Role,
	monthlyLimit int,
	durationDays int,
	isPremium bool,
	price float64,
) (*Plan, error) {
	return NewPlan(id, name, role, monthlyLimit, durationDays, isPremium, price)
}

// Validate ensures the plan was constructed through a factory function.
func (p *Plan) Validate() error {
	if p == nil {
		return ErrPlanIsNotConstructed
	}
	return p.guard.Validate(ErrPlanIsNotConstructed)
}

// ID returns the plan identifier.
func (p *Plan) ID() kernel.UUID { return p.id }

// Name returns the marketing name of the plan.
func (p *Plan) Name() string { return p.name }

// Role returns which marketplace side the plan meters.
func (p *Plan) Role() Role { return p.role }

// MonthlyLimit returns the usage quota granted on activation.
func (p *Plan) MonthlyLimit() int { return p.monthlyLimit }

// DurationDays returns how many days a grant stays valid.
func (p *Plan) DurationDays() int { return p.durationDays }

// IsPremium reports whether holders receive the ranking boost.
func (p *Plan) IsPremium() bool { return p.isPremium }

// Price returns the purchase price of the plan.
func (p *Plan) Price() float64 { return p.price }

func (p *Plan) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Plan) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Plan) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

func (p *Plan) setMonthlyLimit(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("monthlyLimit",
			fmt.Errorf("%d is not greater than 0", limit))
	}
	p.monthlyLimit = limit
	return nil
}

func (p *Plan) setDurationDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("durationDays",
			fmt.Errorf("%d is not greater than 0", days))
	}
	p.durationDays = days
	return nil
}

func (p *Plan) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	p.price = price
	return nil
}
