package listing

import (
	"errors"
	"fmt"
)

// ErrInvalidStatus is returned for status values outside the defined enum and
// for transitions the lifecycle does not allow. State is left unchanged.
var ErrInvalidStatus = errors.New("invalid listing status")

// Status represents the lifecycle state of a shipment listing.
//
// Normal progression:
//
//	Posted ──> Approved ──> Picked ──> InTransit ──> Arrived ──> WaitingConfirmation ──> Delivered
//	   ▲                                                                      │
//	   └───────────────────────── Reopen (any non-terminal) ──────────────────┘
//
// Requested is a display-only value: a Posted listing with pending pickup
// requests is shown as Requested but never stored that way, and it keeps
// accepting new requests. Delivered is terminal.
type Status int

const (
	// Unknown catches uninitialized Status values; it is never valid.
	Unknown Status = iota

	// Posted is the initial open state: visible, ranked, accepting requests.
	Posted

	// Requested is the display status for an open listing with pending
	// pickup requests. It is never persisted.
	Requested

	// Approved means arbitration selected a courier; the listing left the
	// open pool.
	Approved

	// Picked means the assigned courier collected the item from the sender.
	Picked

	// InTransit means the item is being carried toward the destination.
	InTransit

	// Arrived means the item reached the destination country.
	Arrived

	// WaitingConfirmation means the courier reported delivery and the owner
	// has not yet confirmed it.
	WaitingConfirmation

	// Delivered is the terminal state, set by owner confirmation.
	Delivered
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "UNKNOWN",
		Posted:              "POSTED",
		Requested:           "REQUESTED",
		Approved:            "APPROVED",
		Picked:              "PICKED",
		InTransit:           "IN_TRANSIT",
		Arrived:             "ARRIVED",
		WaitingConfirmation: "WAITING_CONFIRMATION",
		Delivered:           "DELIVERED",
	}
}

// courierSteps are the courier-driven transitions of the normal progression.
func courierSteps() map[Status]Status {
	return map[Status]Status{
		Approved:  Picked,
		Picked:    InTransit,
		InTransit: Arrived,
		Arrived:   WaitingConfirmation,
	}
}

// StatusFromString parses the wire representation of a status.
// Returns ErrInvalidStatus for anything outside the defined enum.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// String implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks membership in the defined enum. Requested passes here
// because it is a defined value; persistence-level checks use IsDisplayOnly.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == Unknown {
		return fmt.Errorf("%w: %d is not a defined status", ErrInvalidStatus, int(s))
	}
	return nil
}

// IsDisplayOnly reports whether the status exists only for presentation and
// must never be stored on a listing.
func (s Status) IsDisplayOnly() bool {
	return s == Requested
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// IsOpen reports whether the listing is in the open pool and accepts pickup
// requests.
func (s Status) IsOpen() bool {
	return s == Posted
}

// Approve transitions Posted to Approved. Only arbitration performs this;
// every other origin state fails.
func (s Status) Approve() (Status, error) {
	if s != Posted {
		return Unknown, fmt.Errorf("%w: cannot approve from %s", ErrInvalidStatus, s)
	}
	return Approved, nil
}

// AdvanceTo performs one courier-driven step of the normal progression.
// Exactly the successor of the current state is accepted.
func (s Status) AdvanceTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	successor, ok := courierSteps()[s]
	if !ok || successor != next {
		return Unknown, fmt.Errorf("%w: cannot advance from %s to %s", ErrInvalidStatus, s, next)
	}
	return successor, nil
}

// Confirm transitions WaitingConfirmation to Delivered (owner confirmation).
func (s Status) Confirm() (Status, error) {
	if s != WaitingConfirmation {
		return Unknown, fmt.Errorf("%w: cannot confirm from %s", ErrInvalidStatus, s)
	}
	return Delivered, nil
}

// Reopen releases any non-terminal state back to Posted.
func (s Status) Reopen() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: cannot reopen from %s", ErrInvalidStatus, s)
	}
	return Posted, nil
}

// ValidateCanHaveCourier enforces consistency between status and assignment:
// open listings have no courier, all later states have exactly one.
func (s Status) ValidateCanHaveCourier(hasCourier bool) error {
	if s == Posted && hasCourier {
		return fmt.Errorf("%w: %s must not have an assigned courier", ErrInvalidStatus, s)
	}
	if s != Posted && !hasCourier {
		return fmt.Errorf("%w: %s must have an assigned courier", ErrInvalidStatus, s)
	}
	return nil
}
