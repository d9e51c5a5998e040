package commands

import (
	"errors"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrReopenListingCommandIsNotConstructed = errors.New(
	"ReopenListingCommand must be created via NewReopenListingCommand constructor",
)

// ReopenListingCommand represents the sender returning an assigned shipment
// to the open pool, for example after a courier backs out.
type ReopenListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	ownerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewReopenListingCommand creates a command to reopen a listing.
func NewReopenListingCommand(listingID, ownerID kernel.UUID) (ReopenListingCommand, error) {
	cmd := ReopenListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return ReopenListingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReopenListingCommand) Validate() error {
	return c.guard.Validate(ErrReopenListingCommandIsNotConstructed)
}

// ListingID returns the listing being reopened.
func (c ReopenListingCommand) ListingID() kernel.UUID { return c.listingID }

// OwnerID returns the sender requesting the reopen.
func (c ReopenListingCommand) OwnerID() kernel.UUID { return c.ownerID }

func (c *ReopenListingCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}

func (c *ReopenListingCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.ownerID = id
	return nil
}
