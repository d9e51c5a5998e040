package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
)

// ErrNotListingOwner is returned when an owner-only operation is attempted
// by anyone but the sender who posted the listing.
var ErrNotListingOwner = errors.New("user is not the owner of this listing")

// ConfirmDeliveryCommandHandler closes the delivery loop: the owner confirms
// receipt, the listing reaches its terminal Delivered state, and the carrying
// courier's statistics absorb the completed trip, all in one transaction.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	sink       ports.NotificationSink
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	sink ports.NotificationSink,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the confirmation. Returns ErrNotListingOwner for anyone
// but the posting sender and listing.ErrInvalidStatus unless the listing is
// in WaitingConfirmation.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

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

	courierID := target.AssignedCourierID()

	carryDuration, err := target.ConfirmDelivery(now)
	if err != nil {
		return err
	}

	if err = uow.ListingRepository().Update(ctx, target); err != nil {
		return err
	}

	couriers := uow.CourierRepository()

	profile, err := couriers.Get(ctx, *courierID)
	if err != nil {
		return err
	}

	if err = profile.RecordDelivery(carryDuration); err != nil {
		return err
	}

	if err = couriers.Update(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.sink.Emit(ctx, ports.OutboundEffect{
		UserID: *courierID,
		Title:  "Delivery confirmed",
		Body: fmt.Sprintf("The sender confirmed delivery of the shipment to %s. Your rating went up.",
			target.Route().DestCountry()),
		Kind: ports.EffectKindSuccess,
	})

	return nil
}
