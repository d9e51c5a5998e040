package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/entitlement"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/request"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
)

// ApproveRequestCommandHandler arbitrates between competing pickup requests.
// One transaction spans the whole decision: the winning courier's quota is
// charged, the listing is assigned via a status compare-and-set, the winner
// is approved, every other pending request on the listing is rejected, and
// the winner's rating is bumped. Either all of it commits or none of it does.
type ApproveRequestCommandHandler struct {
	uowFactory ArbitrationUoWFactory
	sink       ports.NotificationSink
}

// NewApproveRequestCommandHandler creates a handler for request arbitration.
func NewApproveRequestCommandHandler(
	uowFactory ArbitrationUoWFactory,
	sink ports.NotificationSink,
) ApproveRequestCommandHandler {
	return ApproveRequestCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the arbitration decision. Returns
// request.ErrRequestNotPending when the chosen request already left Pending,
// listing.ErrAlreadyAssigned when the listing was taken by a concurrent
// approval, and entitlement.ErrQuotaExhausted when the winning courier has no
// consumable grant. All three leave the marketplace untouched.
func (h ApproveRequestCommandHandler) Handle(ctx context.Context, cmd ApproveRequestCommand) error {
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

	requests := uow.RequestRepository()

	winner, err := requests.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if !winner.IsPending() {
		return request.ErrRequestNotPending
	}

	target, err := uow.ListingRepository().Get(ctx, winner.ListingID())
	if err != nil {
		return err
	}

	entitlements := uow.EntitlementRepository()

	grant, err := entitlements.GetConsumableGrant(ctx, winner.CourierID(), now)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return entitlement.ErrQuotaExhausted
	}
	if err != nil {
		return err
	}

	if err = grant.Consume(now); err != nil {
		return err
	}
	if err = entitlements.UpdateGrant(ctx, grant); err != nil {
		return err
	}

	losers, err := requests.GetAllPendingByListing(ctx, winner.ListingID())
	if err != nil {
		return err
	}

	if err = winner.Approve(); err != nil {
		return err
	}
	if err = requests.Update(ctx, winner); err != nil {
		return err
	}

	if err = target.Assign(winner.CourierID(), now); err != nil {
		return err
	}

	// Guarded write: losing a concurrent race surfaces as ErrAlreadyAssigned
	// and rolls back the quota charge and the request transitions.
	if err = uow.ListingRepository().UpdateFromStatus(ctx, target, listing.Posted); err != nil {
		return err
	}

	rejected := make([]*ports.OutboundEffect, 0, len(losers))

	for _, loser := range losers {
		if loser.ID().IsEqual(winner.ID()) {
			continue
		}
		if err = loser.Reject(); err != nil {
			return err
		}
		if err = requests.Update(ctx, loser); err != nil {
			return err
		}

		rejected = append(rejected, &ports.OutboundEffect{
			UserID: loser.CourierID(),
			Title:  "Pickup request declined",
			Body: fmt.Sprintf("The shipment to %s was assigned to another courier.",
				target.Route().DestCountry()),
			Kind: ports.EffectKindWarning,
		})
	}

	couriers := uow.CourierRepository()

	profile, err := couriers.Get(ctx, winner.CourierID())
	if err != nil {
		return err
	}

	profile.RecordArbitrationWin()

	if err = couriers.Update(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.sink.Emit(ctx, ports.OutboundEffect{
		UserID: winner.CourierID(),
		Title:  "Pickup request approved",
		Body: fmt.Sprintf("You were selected to carry the shipment to %s. Pick it up to proceed.",
			target.Route().DestCountry()),
		Kind: ports.EffectKindSuccess,
	})

	for _, effect := range rejected {
		h.sink.Emit(ctx, *effect)
	}

	return nil
}
