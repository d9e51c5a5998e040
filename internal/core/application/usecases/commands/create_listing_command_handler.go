package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/entitlement"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/services"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
)

// CreateListingCommandHandler posts a new shipment listing. Unless the
// ledger is configured for unmetered postings, the owner's active grant is
// charged one unit in the same transaction that persists the listing, so
// quota and listing commit together. The initial ranking score is computed
// immediately; the maintenance batch refreshes it afterwards.
type CreateListingCommandHandler struct {
	uowFactory MarketUoWFactory
	scorer     *services.RankingScorer
	sink       ports.NotificationSink
	config     LedgerConfig
}

// NewCreateListingCommandHandler creates a handler for listing creation.
func NewCreateListingCommandHandler(
	uowFactory MarketUoWFactory,
	scorer *services.RankingScorer,
	sink ports.NotificationSink,
	config LedgerConfig,
) CreateListingCommandHandler {
	return CreateListingCommandHandler{
		uowFactory: uowFactory,
		scorer:     scorer,
		sink:       sink,
		config:     config,
	}
}

// Handle processes the listing creation command. Returns
// entitlement.ErrQuotaExhausted when posting is metered and the owner has no
// consumable grant; in that case nothing is persisted.
func (h CreateListingCommandHandler) Handle(ctx context.Context, cmd CreateListingCommand) error {
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

	if !h.config.UnmeteredPostings {
		grant, err := entitlements.GetConsumableGrant(ctx, cmd.OwnerID(), now)
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
	}

	premium, err := entitlements.HasActivePremiumGrant(ctx, cmd.OwnerID(), now)
	if err != nil {
		return err
	}

	newListing, err := listing.NewListing(
		cmd.ListingID(), cmd.OwnerID(), cmd.Route(), cmd.Weight(), cmd.Fee(), now)
	if err != nil {
		return err
	}

	if err = newListing.SetRankingScore(h.scorer.Score(now, premium, now)); err != nil {
		return err
	}

	if err = uow.ListingRepository().Add(ctx, newListing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.sink.Emit(ctx, ports.OutboundEffect{
		UserID: cmd.OwnerID(),
		Title:  "Shipment posted",
		Body: fmt.Sprintf("Your shipment to %s is live and visible to couriers.",
			cmd.Route().DestCountry()),
		Kind: ports.EffectKindSuccess,
	})

	return nil
}
