package commands

import (
	"errors"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents the sender's final confirmation that the
// shipment arrived.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	ownerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm delivery of a
// listing on behalf of its owner.
func NewConfirmDeliveryCommand(listingID, ownerID kernel.UUID) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// ListingID returns the listing being confirmed.
func (c ConfirmDeliveryCommand) ListingID() kernel.UUID { return c.listingID }

// OwnerID returns the confirming sender.
func (c ConfirmDeliveryCommand) OwnerID() kernel.UUID { return c.ownerID }

func (c *ConfirmDeliveryCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}

func (c *ConfirmDeliveryCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.ownerID = id
	return nil
}
