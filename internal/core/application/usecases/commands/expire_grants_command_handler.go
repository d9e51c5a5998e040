package commands

import (
	"context"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
)

// ExpireGrantsResult reports the outcome of one expiry sweep.
type ExpireGrantsResult struct {
	// Expired is the number of grants deactivated this sweep.
	Expired int

	// Failed is the number of grants whose deactivation did not commit.
	Failed int
}

// ExpireGrantsCommandHandler deactivates lapsed grants. Each grant is retired
// in its own transaction so one failure does not hold the rest of the sweep
// hostage; a failed grant is picked up again on the next run.
type ExpireGrantsCommandHandler struct {
	uowFactory LedgerUoWFactory
	sink       ports.NotificationSink
}

// NewExpireGrantsCommandHandler creates a handler for the expiry sweep.
func NewExpireGrantsCommandHandler(
	uowFactory LedgerUoWFactory,
	sink ports.NotificationSink,
) ExpireGrantsCommandHandler {
	return ExpireGrantsCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle runs the sweep and reports how many grants were expired. A sweep
// with nothing to do succeeds with a zero result.
func (h ExpireGrantsCommandHandler) Handle(
	ctx context.Context,
	cmd ExpireGrantsCommand,
) (ExpireGrantsResult, error) {
	if err := cmd.Validate(); err != nil {
		return ExpireGrantsResult{}, err
	}

	now := time.Now().UTC()

	lapsed, err := h.collectLapsed(ctx, now)
	if err != nil {
		return ExpireGrantsResult{}, err
	}

	var result ExpireGrantsResult

	for _, item := range lapsed {
		if err := h.expireOne(ctx, item.grantID); err != nil {
			result.Failed++
			continue
		}

		result.Expired++

		h.sink.Emit(ctx, ports.OutboundEffect{
			UserID: item.holderID,
			Title:  "Subscription expired",
			Body:   "Your plan has expired. Activate a new plan to keep posting and picking up shipments.",
			Kind:   ports.EffectKindWarning,
		})
	}

	return result, nil
}

type lapsedGrant struct {
	grantID  kernel.UUID
	holderID kernel.UUID
}

// collectLapsed is a read-only pass that snapshots the lapsed grants; each
// one is then retired in its own short transaction.
func (h ExpireGrantsCommandHandler) collectLapsed(
	ctx context.Context,
	now time.Time,
) ([]lapsedGrant, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	grants, err := uow.EntitlementRepository().GetExpiredActiveGrants(ctx, now)
	if err != nil {
		return nil, err
	}

	lapsed := make([]lapsedGrant, 0, len(grants))
	for _, grant := range grants {
		lapsed = append(lapsed, lapsedGrant{grantID: grant.ID(), holderID: grant.HolderID()})
	}

	return lapsed, uow.Commit(ctx)
}

func (h ExpireGrantsCommandHandler) expireOne(ctx context.Context, grantID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entitlements := uow.EntitlementRepository()

	grant, err := entitlements.GetGrant(ctx, grantID)
	if err != nil {
		return err
	}

	grant.Deactivate()

	if err = entitlements.UpdateGrant(ctx, grant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
