package commands

import (
	"context"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/services"
)

// RecomputeRankingsResult reports the outcome of one scoring pass.
type RecomputeRankingsResult struct {
	// Recomputed is the number of open listings rescored this pass.
	Recomputed int

	// Failed is the number of listings whose rescore did not commit.
	Failed int
}

// RecomputeRankingsCommandHandler refreshes the visibility score of every
// open listing. Each listing is rescored in its own transaction: a listing
// approved mid-pass simply drops out, and one failure does not abort the
// rest of the pass.
type RecomputeRankingsCommandHandler struct {
	uowFactory MarketUoWFactory
	scorer     *services.RankingScorer
}

// NewRecomputeRankingsCommandHandler creates a handler for the scoring pass.
func NewRecomputeRankingsCommandHandler(
	uowFactory MarketUoWFactory,
	scorer *services.RankingScorer,
) RecomputeRankingsCommandHandler {
	return RecomputeRankingsCommandHandler{
		uowFactory: uowFactory,
		scorer:     scorer,
	}
}

// Handle runs the scoring pass and reports how many listings were rescored.
func (h RecomputeRankingsCommandHandler) Handle(
	ctx context.Context,
	cmd RecomputeRankingsCommand,
) (RecomputeRankingsResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecomputeRankingsResult{}, err
	}

	now := time.Now().UTC()

	openIDs, err := h.collectOpen(ctx)
	if err != nil {
		return RecomputeRankingsResult{}, err
	}

	var result RecomputeRankingsResult

	for _, id := range openIDs {
		if err := h.rescoreOne(ctx, id, now); err != nil {
			result.Failed++
			continue
		}
		result.Recomputed++
	}

	return result, nil
}

func (h RecomputeRankingsCommandHandler) collectOpen(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	listings, err := uow.ListingRepository().GetAllOpen(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID())
	}

	return ids, uow.Commit(ctx)
}

func (h RecomputeRankingsCommandHandler) rescoreOne(
	ctx context.Context,
	listingID kernel.UUID,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.ListingRepository().Get(ctx, listingID)
	if err != nil {
		return err
	}

	// The listing may have been approved since the snapshot; its score no
	// longer matters and nothing is written.
	if !target.CanAcceptRequests() {
		return uow.Commit(ctx)
	}

	premium, err := uow.EntitlementRepository().HasActivePremiumGrant(ctx, target.OwnerID(), now)
	if err != nil {
		return err
	}

	if err = target.SetRankingScore(h.scorer.Score(target.CreatedAt(), premium, now)); err != nil {
		return err
	}

	if err = uow.ListingRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
