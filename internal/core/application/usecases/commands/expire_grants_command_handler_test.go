package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/application/usecases/commands"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/entitlement"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
)

func newLapsedGrant(t *testing.T) *entitlement.Grant {
	t.Helper()
	now := time.Now().UTC()
	g, err := entitlement.RestoreGrant(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		3, true, now.AddDate(0, 0, -1), now.AddDate(0, 0, -31))
	require.NoError(t, err)
	return g
}

func TestExpireGrantsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewExpireGrantsCommand()

	first := newLapsedGrant(t)
	second := newLapsedGrant(t)

	snapshotRepo := new(MockEntitlementRepository)
	snapshotUoW := new(MockUoW)

	mock.InOrder(
		snapshotUoW.On("Begin", ctx).Return(nil).Once(),
		snapshotUoW.On("EntitlementRepository").Return(snapshotRepo).Once(),
		snapshotRepo.On("GetExpiredActiveGrants", ctx, mock.AnythingOfType("time.Time")).
			Return([]*entitlement.Grant{first, second}, nil).Once(),
		snapshotUoW.On("Commit", ctx).Return(nil).Once(),
		snapshotUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	firstRepo := new(MockEntitlementRepository)
	firstUoW := new(MockUoW)

	mock.InOrder(
		firstUoW.On("Begin", ctx).Return(nil).Once(),
		firstUoW.On("EntitlementRepository").Return(firstRepo).Once(),
		firstRepo.On("GetGrant", ctx, first.ID()).Return(first, nil).Once(),
		firstRepo.On("UpdateGrant", ctx, first).Return(nil).Once(),
		firstUoW.On("Commit", ctx).Return(nil).Once(),
		firstUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	secondRepo := new(MockEntitlementRepository)
	secondUoW := new(MockUoW)

	mock.InOrder(
		secondUoW.On("Begin", ctx).Return(nil).Once(),
		secondUoW.On("EntitlementRepository").Return(secondRepo).Once(),
		secondRepo.On("GetGrant", ctx, second.ID()).Return(second, nil).Once(),
		secondRepo.On("UpdateGrant", ctx, second).Return(nil).Once(),
		secondUoW.On("Commit", ctx).Return(nil).Once(),
		secondUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(snapshotUoW).Once()
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(secondUoW).Once()

	sink := new(MockNotificationSink)
	sink.On("Emit", ctx, mock.AnythingOfType("ports.OutboundEffect")).Return().Twice()

	handler := commands.NewExpireGrantsCommandHandler(factory, sink)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Expired)
	assert.Zero(t, result.Failed)
	assert.False(t, first.IsActive())
	assert.False(t, second.IsActive())
	factory.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestExpireGrantsCommandHandler_Handle_FailureIsolation(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewExpireGrantsCommand()

	first := newLapsedGrant(t)
	second := newLapsedGrant(t)

	snapshotRepo := new(MockEntitlementRepository)
	snapshotUoW := new(MockUoW)

	mock.InOrder(
		snapshotUoW.On("Begin", ctx).Return(nil).Once(),
		snapshotUoW.On("EntitlementRepository").Return(snapshotRepo).Once(),
		snapshotRepo.On("GetExpiredActiveGrants", ctx, mock.AnythingOfType("time.Time")).
			Return([]*entitlement.Grant{first, second}, nil).Once(),
		snapshotUoW.On("Commit", ctx).Return(nil).Once(),
		snapshotUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	firstRepo := new(MockEntitlementRepository)
	firstUoW := new(MockUoW)

	mock.InOrder(
		firstUoW.On("Begin", ctx).Return(nil).Once(),
		firstUoW.On("EntitlementRepository").Return(firstRepo).Once(),
		firstRepo.On("GetGrant", ctx, first.ID()).Return(first, nil).Once(),
		firstRepo.On("UpdateGrant", ctx, first).Return(errors.New("database error")).Once(),
		firstUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	secondRepo := new(MockEntitlementRepository)
	secondUoW := new(MockUoW)

	mock.InOrder(
		secondUoW.On("Begin", ctx).Return(nil).Once(),
		secondUoW.On("EntitlementRepository").Return(secondRepo).Once(),
		secondRepo.On("GetGrant", ctx, second.ID()).Return(second, nil).Once(),
		secondRepo.On("UpdateGrant", ctx, second).Return(nil).Once(),
		secondUoW.On("Commit", ctx).Return(nil).Once(),
		secondUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(snapshotUoW).Once()
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(secondUoW).Once()

	sink := new(MockNotificationSink)
	sink.On("Emit", ctx, mock.AnythingOfType("ports.OutboundEffect")).Return().Once()

	handler := commands.NewExpireGrantsCommandHandler(factory, sink)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err, "one failed grant must not abort the sweep")
	assert.Equal(t, 1, result.Expired)
	assert.Equal(t, 1, result.Failed)
	sink.AssertExpectations(t)
}

func TestExpireGrantsCommandHandler_Handle_NothingToExpire(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewExpireGrantsCommand()

	snapshotRepo := new(MockEntitlementRepository)
	snapshotUoW := new(MockUoW)

	mock.InOrder(
		snapshotUoW.On("Begin", ctx).Return(nil).Once(),
		snapshotUoW.On("EntitlementRepository").Return(snapshotRepo).Once(),
		snapshotRepo.On("GetExpiredActiveGrants", ctx, mock.AnythingOfType("time.Time")).
			Return([]*entitlement.Grant{}, nil).Once(),
		snapshotUoW.On("Commit", ctx).Return(nil).Once(),
		snapshotUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(snapshotUoW).Once()

	sink := new(MockNotificationSink)

	handler := commands.NewExpireGrantsCommandHandler(factory, sink)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result.Expired)
	assert.Zero(t, result.Failed)
	factory.AssertExpectations(t)
	sink.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}
