package request

import (
	"errors"
	"fmt"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var (
	// ErrRequestIsNotConstructed is returned when a PickupRequest was not
	// created through NewPickupRequest or RestorePickupRequest.
	ErrRequestIsNotConstructed = errors.New(
		"PickupRequest must be created via NewPickupRequest or RestorePickupRequest")

	// ErrRequestNotPending is returned when approving or rejecting a request
	// that already left the Pending state. The single transition out of
	// Pending is irrevocable.
	ErrRequestNotPending = errors.New("pickup request is not pending")
)

// PickupRequest is a courier's bid to carry a posted shipment. It is
// write-once except for its single status transition Pending → Approved or
// Pending → Rejected; arbitration guarantees at most one Approved request
// per listing.
type PickupRequest struct {
	id        kernel.UUID
	listingID kernel.UUID
	courierID kernel.UUID
	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewPickupRequest creates a Pending request by the given courier on the
// given listing.
func NewPickupRequest(id, listingID, courierID kernel.UUID, createdAt time.Time) (*PickupRequest, error) {
	r := &PickupRequest{
		status:    Pending,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setListingID(listingID),
		r.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestorePickupRequest reconstructs a request from persistence.
func RestorePickupRequest(
	id, listingID, courierID kernel.UUID,
	status Status,
	createdAt time.Time,
) (*PickupRequest, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r := &PickupRequest{
		status:    status,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setListingID(listingID),
		r.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the request was constructed through a factory function.
func (r *PickupRequest) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// ID returns the request identifier.
func (r *PickupRequest) ID() kernel.UUID { return r.id }

// ListingID returns the listing this request bids on.
func (r *PickupRequest) ListingID() kernel.UUID { return r.listingID }

// CourierID returns the bidding courier.
func (r *PickupRequest) CourierID() kernel.UUID { return r.courierID }

// Status returns the current request status.
func (r *PickupRequest) Status() Status { return r.status }

// CreatedAt returns the submission time.
func (r *PickupRequest) CreatedAt() time.Time { return r.createdAt }

// IsPending reports whether the request is still awaiting arbitration.
func (r *PickupRequest) IsPending() bool { return r.status == Pending }

// Approve marks the request as the arbitration winner.
// Fails with ErrRequestNotPending from any state but Pending.
func (r *PickupRequest) Approve() error {
	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// Reject declines the request, either explicitly by the owner or as a
// cascading loser of arbitration. Fails with ErrRequestNotPending from any
// state but Pending.
func (r *PickupRequest) Reject() error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

func (r *PickupRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *PickupRequest) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return fmt.Errorf("listingID: %w", err)
	}
	r.listingID = listingID
	return nil
}

func (r *PickupRequest) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return fmt.Errorf("courierID: %w", err)
	}
	r.courierID = courierID
	return nil
}
