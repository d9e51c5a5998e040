package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
)

// ErrNotAssignedCourier is returned when a courier-driven transition comes
// from anyone but the courier currently assigned to the listing.
var ErrNotAssignedCourier = errors.New("courier is not assigned to this listing")

// AdvanceListingCommandHandler moves an assigned shipment one step along the
// delivery progression (Approved → Picked → InTransit → Arrived →
// WaitingConfirmation). Only the assigned courier may drive it, one exact
// step at a time.
type AdvanceListingCommandHandler struct {
	uowFactory ListingUoWFactory
	sink       ports.NotificationSink
}

// NewAdvanceListingCommandHandler creates a handler for delivery progression.
func NewAdvanceListingCommandHandler(
	uowFactory ListingUoWFactory,
	sink ports.NotificationSink,
) AdvanceListingCommandHandler {
	return AdvanceListingCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the step. Returns ErrNotAssignedCourier for anyone but
// the assigned courier and listing.ErrInvalidStatus for any jump that is not
// the exact successor of the current status.
func (h AdvanceListingCommandHandler) Handle(ctx context.Context, cmd AdvanceListingCommand) error {
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

	if !target.IsAssignedCourier(cmd.CourierID()) {
		return ErrNotAssignedCourier
	}

	if err = target.AdvanceTo(cmd.Next()); err != nil {
		return err
	}

	if err = uow.ListingRepository().Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.sink.Emit(ctx, ports.OutboundEffect{
		UserID: target.OwnerID(),
		Title:  "Shipment update",
		Body: fmt.Sprintf("Your shipment to %s is now %s.",
			target.Route().DestCountry(), target.Status()),
		Kind: ports.EffectKindInfo,
	})

	return nil
}
