package listing

import (
	"errors"
	"fmt"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var (
	// ErrListingIsNotConstructed is returned when a Listing was not created
	// through NewListing or RestoreListing.
	ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing or RestoreListing")

	// ErrNotOpenForRequests is returned when a pickup request targets a
	// listing that is no longer in the open pool.
	ErrNotOpenForRequests = errors.New("listing is not open for requests")

	// ErrAlreadyAssigned is returned when an approval races for a listing
	// that already left the Posted state. Nothing is mutated.
	ErrAlreadyAssigned = errors.New("listing is already assigned to a courier")
)

// Listing is the aggregate root for a shipment posting. It owns the lifecycle
// status and its valid transitions, the single-courier assignment, and the
// transient visibility score used to order the marketplace.
//
// Invariants:
//   - assignedCourier is set if and only if the status is not Posted, and
//     there is never more than one assigned courier.
//   - pickedAt is set together with the assignment and cleared on reopen.
//   - Delivered is terminal; no transition leaves it.
//   - rankingScore is never negative.
type Listing struct {
	id                kernel.UUID
	ownerID           kernel.UUID
	assignedCourierID *kernel.UUID
	route             Route
	weight            float64
	fee               float64
	rankingScore      float64
	status            Status
	createdAt         time.Time
	pickedAt          *time.Time

	guard guard.ConstructorGuard
}

// NewListing creates a fresh listing in Posted status with no courier and a
// zero ranking score. Weight must be positive and fee non-negative.
func NewListing(
	id kernel.UUID,
	ownerID kernel.UUID,
	route Route,
	weight float64,
	fee float64,
	createdAt time.Time,
) (*Listing, error) {
	l := &Listing{
		status:    Posted,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setOwnerID(ownerID),
		l.setRoute(route),
		l.setWeight(weight),
		l.setFee(fee),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreListing reconstructs a listing from persistence, re-validating the
// status/assignment consistency rules. Display-only statuses are rejected:
// Requested is computed, never stored.
func RestoreListing(
	id kernel.UUID,
	ownerID kernel.UUID,
	assignedCourierID *kernel.UUID,
	route Route,
	weight float64,
	fee float64,
	rankingScore float64,
	status Status,
	createdAt time.Time,
	pickedAt *time.Time,
) (*Listing, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status.IsDisplayOnly() {
		return nil, fmt.Errorf("%w: %s cannot be persisted", ErrInvalidStatus, status)
	}
	if err := status.ValidateCanHaveCourier(assignedCourierID != nil); err != nil {
		return nil, err
	}
	if assignedCourierID != nil {
		if err := assignedCourierID.Validate(); err != nil {
			return nil, err
		}
	}

	l := &Listing{
		status:            status,
		assignedCourierID: assignedCourierID,
		rankingScore:      rankingScore,
		createdAt:         createdAt.UTC(),
		pickedAt:          pickedAt,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setOwnerID(ownerID),
		l.setRoute(route),
		l.setWeight(weight),
		l.setFee(fee),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the listing was constructed through a factory function.
func (l *Listing) Validate() error {
	if l == nil {
		return ErrListingIsNotConstructed
	}
	return l.guard.Validate(ErrListingIsNotConstructed)
}

// ID returns the listing identifier.
func (l *Listing) ID() kernel.UUID { return l.id }

// OwnerID returns the sender who posted the listing.
func (l *Listing) OwnerID() kernel.UUID { return l.ownerID }

// AssignedCourierID returns the selected courier, or nil while open.
func (l *Listing) AssignedCourierID() *kernel.UUID { return l.assignedCourierID }

// Route returns the shipment route details.
func (l *Listing) Route() Route { return l.route }

// Weight returns the item weight in kilograms.
func (l *Listing) Weight() float64 { return l.weight }

// Fee returns the delivery fee offered by the sender.
func (l *Listing) Fee() float64 { return l.fee }

// RankingScore returns the current visibility score.
func (l *Listing) RankingScore() float64 { return l.rankingScore }

// Status returns the persisted lifecycle status.
func (l *Listing) Status() Status { return l.status }

// CreatedAt returns the posting time.
func (l *Listing) CreatedAt() time.Time { return l.createdAt }

// PickedAt returns the approval time, or nil while unassigned.
func (l *Listing) PickedAt() *time.Time { return l.pickedAt }

// IsEqual compares listings by identity.
func (l *Listing) IsEqual(other *Listing) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// CanAcceptRequests reports whether couriers may submit pickup requests.
// Pending requests do not close the listing: a listing displayed as
// Requested still accepts competitors.
func (l *Listing) CanAcceptRequests() bool {
	return l.status.IsOpen()
}

// DisplayStatus derives the presentation status: an open listing with
// pending pickup requests is shown as Requested.
func (l *Listing) DisplayStatus(hasPendingRequests bool) Status {
	if l.status.IsOpen() && hasPendingRequests {
		return Requested
	}
	return l.status
}

// IsAssignedCourier reports whether the given courier currently carries the
// shipment. Used by callers to reject courier-driven transitions from anyone
// else before they reach the state machine.
func (l *Listing) IsAssignedCourier(courierID kernel.UUID) bool {
	return l.assignedCourierID != nil && l.assignedCourierID.IsEqual(courierID)
}

// Assign selects the winning courier: Posted becomes Approved, the courier
// is attached and pickedAt is stamped. A listing outside Posted fails with
// ErrAlreadyAssigned and stays unchanged.
func (l *Listing) Assign(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if l.status != Posted {
		return ErrAlreadyAssigned
	}

	newStatus, err := l.status.Approve()
	if err != nil {
		return err
	}

	picked := now.UTC()
	l.status = newStatus
	l.assignedCourierID = &courierID
	l.pickedAt = &picked
	return nil
}

// AdvanceTo performs one courier-driven step (Approved→Picked→InTransit→
// Arrived→WaitingConfirmation). Only the status changes.
func (l *Listing) AdvanceTo(next Status) error {
	newStatus, err := l.status.AdvanceTo(next)
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// ConfirmDelivery is the owner's confirmation: WaitingConfirmation becomes
// Delivered and the carry duration since pickedAt is returned so the caller
// can update courier statistics.
func (l *Listing) ConfirmDelivery(now time.Time) (time.Duration, error) {
	newStatus, err := l.status.Confirm()
	if err != nil {
		return 0, err
	}
	if l.pickedAt == nil {
		return 0, fmt.Errorf("%w: listing has no pickup time", ErrInvalidStatus)
	}

	duration := now.UTC().Sub(*l.pickedAt)
	l.status = newStatus
	return duration, nil
}

// Reopen releases the listing back to the open pool: any non-terminal state
// returns to Posted with the courier assignment and pickup time cleared.
func (l *Listing) Reopen() error {
	newStatus, err := l.status.Reopen()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.assignedCourierID = nil
	l.pickedAt = nil
	return nil
}

// SetRankingScore stores a freshly computed visibility score.
func (l *Listing) SetRankingScore(score float64) error {
	if score < 0 {
		return errs.NewValueIsOutOfRangeError("rankingScore", score, 0, "unbounded")
	}
	l.rankingScore = score
	return nil
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	l.ownerID = ownerID
	return nil
}

func (l *Listing) setRoute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	l.route = route
	return nil
}

func (l *Listing) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weight))
	}
	l.weight = weight
	return nil
}

func (l *Listing) setFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("fee",
			fmt.Errorf("%v is negative", fee))
	}
	l.fee = fee
	return nil
}
