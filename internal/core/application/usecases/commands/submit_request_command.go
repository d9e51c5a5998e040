package commands

import (
	"errors"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrSubmitRequestCommandIsNotConstructed = errors.New(
	"SubmitRequestCommand must be created via NewSubmitRequestCommand constructor",
)

// SubmitRequestCommand represents a courier's bid to carry a posted shipment.
type SubmitRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	listingID kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitRequestCommand creates a command to submit a pickup request.
// The requestID is used only when no pending request by the same courier
// already exists on the listing.
func NewSubmitRequestCommand(requestID, listingID, courierID kernel.UUID) (SubmitRequestCommand, error) {
	cmd := SubmitRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setListingID(listingID),
		cmd.setCourierID(courierID),
	); err != nil {
		return SubmitRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRequestCommandIsNotConstructed)
}

// RequestID returns the identifier for a newly created request.
func (c SubmitRequestCommand) RequestID() kernel.UUID { return c.requestID }

// ListingID returns the target listing.
func (c SubmitRequestCommand) ListingID() kernel.UUID { return c.listingID }

// CourierID returns the bidding courier.
func (c SubmitRequestCommand) CourierID() kernel.UUID { return c.courierID }

func (c *SubmitRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *SubmitRequestCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}

func (c *SubmitRequestCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}
