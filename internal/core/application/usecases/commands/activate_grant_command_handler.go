package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/entitlement"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
)

// ActivateGrantCommandHandler turns a plan purchase into a live grant. Every
// grant still flagged active for the holder is deactivated first, in the same
// transaction, so the one-active-grant invariant holds even if the prior
// grant never expired.
type ActivateGrantCommandHandler struct {
	uowFactory LedgerUoWFactory
	sink       ports.NotificationSink
}

// NewActivateGrantCommandHandler creates a handler for grant activation.
func NewActivateGrantCommandHandler(
	uowFactory LedgerUoWFactory,
	sink ports.NotificationSink,
) ActivateGrantCommandHandler {
	return ActivateGrantCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the activation. Unused quota on replaced grants is
// forfeited, not carried over.
func (h ActivateGrantCommandHandler) Handle(ctx context.Context, cmd ActivateGrantCommand) error {
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

	entitlements := uow.EntitlementRepository()

	plan, err := entitlements.GetPlan(ctx, cmd.PlanID())
	if err != nil {
		return err
	}

	prior, err := entitlements.GetActiveGrantsByHolder(ctx, cmd.HolderID())
	if err != nil {
		return err
	}

	for _, old := range prior {
		old.Deactivate()
		if err = entitlements.UpdateGrant(ctx, old); err != nil {
			return err
		}
	}

	grant, err := entitlement.NewGrant(cmd.GrantID(), cmd.HolderID(), plan, now)
	if err != nil {
		return err
	}

	if err = entitlements.AddGrant(ctx, grant); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.sink.Emit(ctx, ports.OutboundEffect{
		UserID: cmd.HolderID(),
		Title:  "Subscription activated",
		Body: fmt.Sprintf("Your %s plan is active: %d units until %s.",
			plan.Name(), plan.MonthlyLimit(), grant.ExpiresAt().Format("2 Jan 2006")),
		Kind: ports.EffectKindSuccess,
	})

	return nil
}
