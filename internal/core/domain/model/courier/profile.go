package courier

import (
	"errors"
	"fmt"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

const (
	// MaxRating is the upper bound for a courier's rating.
	MaxRating = 5.0

	// approvalRatingBump is added when the courier wins arbitration.
	approvalRatingBump = 0.1

	// deliveryRatingBump is added when a delivery is confirmed by the owner.
	deliveryRatingBump = 0.2
)

var (
	// ErrProfileIsNotConstructed is returned when a Profile was not created
	// through NewProfile or RestoreProfile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile")

	// ErrNameIsRequired is returned when creating a profile without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Profile tracks a courier's marketplace performance: rating, number of
// completed deliveries, and the running average carry duration. It is
// updated by arbitration wins and confirmed deliveries only.
//
// Invariants:
//   - rating stays within [0, MaxRating]
//   - completedDeliveries never decreases
//   - averageDeliveryHours is the incremental mean over completed deliveries
type Profile struct {
	id                   kernel.UUID
	name                 string
	rating               float64
	completedDeliveries  int
	averageDeliveryHours float64

	guard guard.ConstructorGuard
}

// NewProfile creates a fresh courier profile with zeroed statistics.
func NewProfile(id kernel.UUID, name string) (*Profile, error) {
	p := &Profile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProfile reconstructs a courier profile from persistence.
func RestoreProfile(
	id kernel.UUID,
	name string,
	rating float64,
	completedDeliveries int,
	averageDeliveryHours float64,
) (*Profile, error) {
	if rating < 0 || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, 0, MaxRating)
	}
	if completedDeliveries < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("completedDeliveries",
			fmt.Errorf("%d is negative", completedDeliveries))
	}
	if averageDeliveryHours < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("averageDeliveryHours",
			fmt.Errorf("%v is negative", averageDeliveryHours))
	}

	p := &Profile{
		rating:               rating,
		completedDeliveries:  completedDeliveries,
		averageDeliveryHours: averageDeliveryHours,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the profile was constructed through a factory function.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// ID returns the courier identifier.
func (p *Profile) ID() kernel.UUID { return p.id }

// Name returns the courier's display name.
func (p *Profile) Name() string { return p.name }

// Rating returns the current rating in [0, MaxRating].
func (p *Profile) Rating() float64 { return p.rating }

// CompletedDeliveries returns the number of confirmed deliveries.
func (p *Profile) CompletedDeliveries() int { return p.completedDeliveries }

// AverageDeliveryHours returns the running mean carry duration in hours.
func (p *Profile) AverageDeliveryHours() float64 { return p.averageDeliveryHours }

// RecordArbitrationWin applies the small rating bump for winning a listing.
func (p *Profile) RecordArbitrationWin() {
	p.bumpRating(approvalRatingBump)
}

// RecordDelivery applies the effects of an owner-confirmed delivery: the
// completed counter increments, the rating rises by the delivery bump
// (capped), and the average carry time is folded in incrementally:
//
//	newAvg = (oldAvg*priorCount + thisDuration) / (priorCount + 1)
func (p *Profile) RecordDelivery(carryDuration time.Duration) error {
	if carryDuration < 0 {
		return errs.NewValueIsInvalidErrorWithCause("carryDuration",
			fmt.Errorf("%s is negative", carryDuration))
	}

	hours := carryDuration.Hours()
	prior := float64(p.completedDeliveries)
	p.averageDeliveryHours = (p.averageDeliveryHours*prior + hours) / (prior + 1)
	p.completedDeliveries++
	p.bumpRating(deliveryRatingBump)
	return nil
}

func (p *Profile) bumpRating(delta float64) {
	p.rating += delta
	if p.rating > MaxRating {
		p.rating = MaxRating
	}
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
