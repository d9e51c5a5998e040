package commands

import (
	"errors"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrAdvanceListingCommandIsNotConstructed = errors.New(
	"AdvanceListingCommand must be created via NewAdvanceListingCommand constructor",
)

// AdvanceListingCommand represents a courier moving the shipment one step
// along the delivery progression.
type AdvanceListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	courierID kernel.UUID
	next      listing.Status

	guard guard.ConstructorGuard
}

// NewAdvanceListingCommand creates a command to advance a listing to next.
// Whether next is a legal step from the current status is decided by the
// aggregate; here only a constructed, courier-reachable status is required.
func NewAdvanceListingCommand(
	listingID, courierID kernel.UUID,
	next listing.Status,
) (AdvanceListingCommand, error) {
	cmd := AdvanceListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setCourierID(courierID),
		cmd.setNext(next),
	); err != nil {
		return AdvanceListingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceListingCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceListingCommandIsNotConstructed)
}

// ListingID returns the listing being advanced.
func (c AdvanceListingCommand) ListingID() kernel.UUID { return c.listingID }

// CourierID returns the courier driving the transition.
func (c AdvanceListingCommand) CourierID() kernel.UUID { return c.courierID }

// Next returns the requested target status.
func (c AdvanceListingCommand) Next() listing.Status { return c.next }

func (c *AdvanceListingCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}

func (c *AdvanceListingCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}

func (c *AdvanceListingCommand) setNext(next listing.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.next = next
	return nil
}
