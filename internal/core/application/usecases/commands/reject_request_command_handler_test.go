package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/application/usecases/commands"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/request"
)

func TestRejectRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	requestID := kernel.NewUUID()
	listingID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	declined := newPendingRequest(t, requestID, listingID, courierID)
	target := newPostedListing(t, listingID, kernel.NewUUID())

	cmd, err := commands.NewRejectRequestCommand(requestID)
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, requestID).Return(declined, nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Get", ctx, listingID).Return(target, nil).Once(),
		requestRepo.On("Update", ctx, declined).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)
	sink.On("Emit", ctx, mock.AnythingOfType("ports.OutboundEffect")).Return().Once()

	handler := commands.NewRejectRequestCommandHandler(factory, sink)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, request.Rejected, declined.Status())
	assert.Equal(t, listing.Posted, target.Status(), "rejection must not touch the listing")
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestRejectRequestCommandHandler_Handle_RequestNotPending(t *testing.T) {
	ctx := t.Context()

	requestID := kernel.NewUUID()
	listingID := kernel.NewUUID()

	declined := newPendingRequest(t, requestID, listingID, kernel.NewUUID())
	require.NoError(t, declined.Approve())
	target := newPostedListing(t, listingID, kernel.NewUUID())

	cmd, err := commands.NewRejectRequestCommand(requestID)
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, requestID).Return(declined, nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Get", ctx, listingID).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectRequestCommandHandler(factory, new(MockNotificationSink))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, request.ErrRequestNotPending)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRejectRequestCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RejectRequestCommand{} // not constructed properly

	factory := new(MockRequestUoWFactory)
	handler := commands.NewRejectRequestCommandHandler(factory, new(MockNotificationSink))
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRejectRequestCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
