package commands

import (
	"context"
	"errors"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/request"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
)

// SubmitRequestCommandHandler records a courier's pickup request on an open
// listing. Submission is idempotent per courier per listing: resubmitting
// while a pending request exists changes nothing and succeeds.
type SubmitRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	sink       ports.NotificationSink
}

// NewSubmitRequestCommandHandler creates a handler for request submission.
func NewSubmitRequestCommandHandler(
	uowFactory RequestUoWFactory,
	sink ports.NotificationSink,
) SubmitRequestCommandHandler {
	return SubmitRequestCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the submission. Returns listing.ErrNotOpenForRequests
// when the listing already left the open pool. Pending competitors do not
// close the listing; they only change its display status.
func (h SubmitRequestCommandHandler) Handle(ctx context.Context, cmd SubmitRequestCommand) error {
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

	if !target.CanAcceptRequests() {
		return listing.ErrNotOpenForRequests
	}

	requests := uow.RequestRepository()

	existing, err := requests.GetPendingByListingAndCourier(ctx, cmd.ListingID(), cmd.CourierID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		// Idempotent resubmit: the pending request stands unchanged.
		return uow.Commit(ctx)
	}

	newRequest, err := request.NewPickupRequest(
		cmd.RequestID(), cmd.ListingID(), cmd.CourierID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = requests.Add(ctx, newRequest); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.sink.Emit(ctx, ports.OutboundEffect{
		UserID: target.OwnerID(),
		Title:  "New pickup request",
		Body:   "A courier has requested to carry your shipment. Review and approve one request.",
		Kind:   ports.EffectKindInfo,
	})

	return nil
}
