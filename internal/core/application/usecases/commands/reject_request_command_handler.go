package commands

import (
	"context"
	"fmt"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
)

// RejectRequestCommandHandler declines a single pending pickup request
// without touching the listing: the listing stays open and other pending
// requests are unaffected.
type RejectRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	sink       ports.NotificationSink
}

// NewRejectRequestCommandHandler creates a handler for explicit rejection.
func NewRejectRequestCommandHandler(
	uowFactory RequestUoWFactory,
	sink ports.NotificationSink,
) RejectRequestCommandHandler {
	return RejectRequestCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the rejection. Returns request.ErrRequestNotPending when
// the request already left the Pending state.
func (h RejectRequestCommandHandler) Handle(ctx context.Context, cmd RejectRequestCommand) error {
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

	requests := uow.RequestRepository()

	declined, err := requests.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	target, err := uow.ListingRepository().Get(ctx, declined.ListingID())
	if err != nil {
		return err
	}

	if err = declined.Reject(); err != nil {
		return err
	}

	if err = requests.Update(ctx, declined); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.sink.Emit(ctx, ports.OutboundEffect{
		UserID: declined.CourierID(),
		Title:  "Pickup request declined",
		Body: fmt.Sprintf("The sender declined your request for the shipment to %s.",
			target.Route().DestCountry()),
		Kind: ports.EffectKindWarning,
	})

	return nil
}
