package commands

import (
	"context"
	"fmt"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
)

// ReopenListingCommandHandler releases an assigned shipment back to the open
// pool: the courier assignment and pickup time are cleared and the listing
// becomes Posted again. Quota already consumed stays consumed.
type ReopenListingCommandHandler struct {
	uowFactory ListingUoWFactory
	sink       ports.NotificationSink
}

// NewReopenListingCommandHandler creates a handler for reopening listings.
func NewReopenListingCommandHandler(
	uowFactory ListingUoWFactory,
	sink ports.NotificationSink,
) ReopenListingCommandHandler {
	return ReopenListingCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the reopen. Returns ErrNotListingOwner for anyone but the
// posting sender and listing.ErrInvalidStatus once the listing is Delivered.
func (h ReopenListingCommandHandler) Handle(ctx context.Context, cmd ReopenListingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.ListingRepository().Get(ctx, cmd.ListingID())
	if err != nil {
		return err
	}

	if !target.OwnerID().IsEqual(cmd.OwnerID()) {
		return ErrNotListingOwner
	}

	releasedCourierID := target.AssignedCourierID()

	if err = target.Reopen(); err != nil {
		return err
	}

	if err = uow.ListingRepository().Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if releasedCourierID != nil {
		h.sink.Emit(ctx, ports.OutboundEffect{
			UserID: *releasedCourierID,
			Title:  "Shipment reopened",
			Body: fmt.Sprintf("The sender returned the shipment to %s to the open pool.",
				target.Route().DestCountry()),
			Kind: ports.EffectKindWarning,
		})
	}

	return nil
}
