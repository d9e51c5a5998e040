package commands

import (
	"errors"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrCreateListingCommandIsNotConstructed = errors.New(
	"CreateListingCommand must be created via NewCreateListingCommand constructor",
)

// CreateListingCommand represents a sender's request to post a new shipment.
type CreateListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	ownerID   kernel.UUID
	route     listing.Route
	weight    float64
	fee       float64

	guard guard.ConstructorGuard
}

// NewCreateListingCommand creates a command to post a new shipment listing.
// The route must be a constructed listing.Route; weight and fee bounds are
// enforced by the Listing aggregate on creation.
func NewCreateListingCommand(
	listingID, ownerID kernel.UUID,
	route listing.Route,
	weight, fee float64,
) (CreateListingCommand, error) {
	cmd := CreateListingCommand{
		weight: weight,
		fee:    fee,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setOwnerID(ownerID),
		cmd.setRoute(route),
	); err != nil {
		return CreateListingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

// ListingID returns the identifier for the new listing.
func (c CreateListingCommand) ListingID() kernel.UUID { return c.listingID }

// OwnerID returns the posting sender.
func (c CreateListingCommand) OwnerID() kernel.UUID { return c.ownerID }

// Route returns the shipment route.
func (c CreateListingCommand) Route() listing.Route { return c.route }

// Weight returns the item weight in kilograms.
func (c CreateListingCommand) Weight() float64 { return c.weight }

// Fee returns the offered delivery fee.
func (c CreateListingCommand) Fee() float64 { return c.fee }

func (c *CreateListingCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}

func (c *CreateListingCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.ownerID = id
	return nil
}

func (c *CreateListingCommand) setRoute(route listing.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	c.route = route
	return nil
}
