package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/application/usecases/commands"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/entitlement"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/services"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
)

func newTestScorer() *services.RankingScorer {
	return services.NewRankingScorer(services.DefaultRankingConfig(), func() float64 { return 0 })
}

func TestCreateListingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	listingID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	grant := newActiveGrant(t, ownerID)

	cmd, err := commands.NewCreateListingCommand(listingID, ownerID, testRoute(t), 2.5, 40)
	require.NoError(t, err)

	var added *listing.Listing

	listingRepo := new(MockListingRepository)
	entitlementRepo := new(MockEntitlementRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntitlementRepository").Return(entitlementRepo).Once(),
		entitlementRepo.On("GetConsumableGrant", ctx, ownerID, mock.AnythingOfType("time.Time")).
			Return(grant, nil).Once(),
		entitlementRepo.On("UpdateGrant", ctx, grant).Return(nil).Once(),
		entitlementRepo.On("HasActivePremiumGrant", ctx, ownerID, mock.AnythingOfType("time.Time")).
			Return(false, nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Add", ctx, mock.AnythingOfType("*listing.Listing")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*listing.Listing)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)
	sink.On("Emit", ctx, mock.AnythingOfType("ports.OutboundEffect")).Return().Once()

	handler := commands.NewCreateListingCommandHandler(factory, newTestScorer(), sink, commands.LedgerConfig{})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.True(t, added.ID().IsEqual(listingID))
	assert.Equal(t, listing.Posted, added.Status())
	assert.InDelta(t, 100, added.RankingScore(), 0.0001)
	assert.Equal(t, 4, grant.RemainingUsage())
	listingRepo.AssertExpectations(t)
	entitlementRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestCreateListingCommandHandler_Handle_PremiumBoost(t *testing.T) {
	ctx := t.Context()

	listingID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	grant := newActiveGrant(t, ownerID)

	cmd, err := commands.NewCreateListingCommand(listingID, ownerID, testRoute(t), 2.5, 40)
	require.NoError(t, err)

	var added *listing.Listing

	listingRepo := new(MockListingRepository)
	entitlementRepo := new(MockEntitlementRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntitlementRepository").Return(entitlementRepo).Once(),
		entitlementRepo.On("GetConsumableGrant", ctx, ownerID, mock.AnythingOfType("time.Time")).
			Return(grant, nil).Once(),
		entitlementRepo.On("UpdateGrant", ctx, grant).Return(nil).Once(),
		entitlementRepo.On("HasActivePremiumGrant", ctx, ownerID, mock.AnythingOfType("time.Time")).
			Return(true, nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Add", ctx, mock.AnythingOfType("*listing.Listing")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*listing.Listing)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)
	sink.On("Emit", ctx, mock.AnythingOfType("ports.OutboundEffect")).Return().Once()

	handler := commands.NewCreateListingCommandHandler(factory, newTestScorer(), sink, commands.LedgerConfig{})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.InDelta(t, 600, added.RankingScore(), 0.0001)
}

func TestCreateListingCommandHandler_Handle_UnmeteredPostings(t *testing.T) {
	ctx := t.Context()

	listingID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	cmd, err := commands.NewCreateListingCommand(listingID, ownerID, testRoute(t), 2.5, 40)
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	entitlementRepo := new(MockEntitlementRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntitlementRepository").Return(entitlementRepo).Once(),
		entitlementRepo.On("HasActivePremiumGrant", ctx, ownerID, mock.AnythingOfType("time.Time")).
			Return(false, nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Add", ctx, mock.AnythingOfType("*listing.Listing")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)
	sink.On("Emit", ctx, mock.AnythingOfType("ports.OutboundEffect")).Return().Once()

	handler := commands.NewCreateListingCommandHandler(
		factory, newTestScorer(), sink, commands.LedgerConfig{UnmeteredPostings: true})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	entitlementRepo.AssertNotCalled(t, "GetConsumableGrant", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateListingCommandHandler_Handle_QuotaExhausted(t *testing.T) {
	ctx := t.Context()

	ownerID := kernel.NewUUID()

	cmd, err := commands.NewCreateListingCommand(kernel.NewUUID(), ownerID, testRoute(t), 2.5, 40)
	require.NoError(t, err)

	entitlementRepo := new(MockEntitlementRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntitlementRepository").Return(entitlementRepo).Once(),
		entitlementRepo.On("GetConsumableGrant", ctx, ownerID, mock.AnythingOfType("time.Time")).
			Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)

	handler := commands.NewCreateListingCommandHandler(factory, newTestScorer(), sink, commands.LedgerConfig{})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, entitlement.ErrQuotaExhausted)
	uow.AssertNotCalled(t, "Commit", ctx)
	sink.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

func TestCreateListingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateListingCommand{} // not constructed properly

	factory := new(MockMarketUoWFactory)
	handler := commands.NewCreateListingCommandHandler(
		factory, newTestScorer(), new(MockNotificationSink), commands.LedgerConfig{})
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateListingCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
