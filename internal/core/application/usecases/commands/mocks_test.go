package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/application/usecases/commands"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/courier"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/entitlement"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/request"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
)

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Add(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) UpdateFromStatus(
	ctx context.Context,
	l *listing.Listing,
	expected listing.Status,
) error {
	args := m.Called(ctx, l, expected)
	return args.Error(0)
}

func (m *MockListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

func (m *MockListingRepository) GetAllOpen(ctx context.Context) ([]*listing.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.Listing), args.Error(1)
}

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.PickupRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, r *request.PickupRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.PickupRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.PickupRequest), args.Error(1)
}

func (m *MockRequestRepository) GetPendingByListingAndCourier(
	ctx context.Context,
	listingID, courierID kernel.UUID,
) (*request.PickupRequest, error) {
	args := m.Called(ctx, listingID, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.PickupRequest), args.Error(1)
}

func (m *MockRequestRepository) GetAllPendingByListing(
	ctx context.Context,
	listingID kernel.UUID,
) ([]*request.PickupRequest, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*request.PickupRequest), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, p *courier.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, p *courier.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Profile), args.Error(1)
}

type MockEntitlementRepository struct{ mock.Mock }

func (m *MockEntitlementRepository) AddPlan(ctx context.Context, p *entitlement.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockEntitlementRepository) GetPlan(ctx context.Context, id kernel.UUID) (*entitlement.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entitlement.Plan), args.Error(1)
}

func (m *MockEntitlementRepository) AddGrant(ctx context.Context, g *entitlement.Grant) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockEntitlementRepository) UpdateGrant(ctx context.Context, g *entitlement.Grant) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockEntitlementRepository) GetGrant(ctx context.Context, id kernel.UUID) (*entitlement.Grant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entitlement.Grant), args.Error(1)
}

func (m *MockEntitlementRepository) GetConsumableGrant(
	ctx context.Context,
	holderID kernel.UUID,
	now time.Time,
) (*entitlement.Grant, error) {
	args := m.Called(ctx, holderID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entitlement.Grant), args.Error(1)
}

func (m *MockEntitlementRepository) GetActiveGrantsByHolder(
	ctx context.Context,
	holderID kernel.UUID,
) ([]*entitlement.Grant, error) {
	args := m.Called(ctx, holderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entitlement.Grant), args.Error(1)
}

func (m *MockEntitlementRepository) GetExpiredActiveGrants(
	ctx context.Context,
	now time.Time,
) ([]*entitlement.Grant, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entitlement.Grant), args.Error(1)
}

func (m *MockEntitlementRepository) HasActivePremiumGrant(
	ctx context.Context,
	holderID kernel.UUID,
	now time.Time,
) (bool, error) {
	args := m.Called(ctx, holderID, now)
	return args.Bool(0), args.Error(1)
}

// MockUoW carries all four repositories; each handler only calls the subset
// its narrow interface exposes.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) EntitlementRepository() ports.EntitlementRepository {
	args := m.Called()
	return args.Get(0).(ports.EntitlementRepository)
}

type MockArbitrationUoWFactory struct{ mock.Mock }

func (m *MockArbitrationUoWFactory) Create() commands.ArbitrationUoW {
	args := m.Called()
	return args.Get(0).(commands.ArbitrationUoW)
}

type MockListingUoWFactory struct{ mock.Mock }

func (m *MockListingUoWFactory) Create() commands.ListingUoW {
	args := m.Called()
	return args.Get(0).(commands.ListingUoW)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockMarketUoWFactory struct{ mock.Mock }

func (m *MockMarketUoWFactory) Create() commands.MarketUoW {
	args := m.Called()
	return args.Get(0).(commands.MarketUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Emit(ctx context.Context, effect ports.OutboundEffect) {
	m.Called(ctx, effect)
}

// Shared fixtures.

func testRoute(t *testing.T) listing.Route {
	t.Helper()
	route, err := listing.NewRoute("Germany", "Ethiopia", "Bole Road 12, Addis Ababa", "Alem T.", "+251911000000")
	require.NoError(t, err)
	return route
}

func newPostedListing(t *testing.T, id, ownerID kernel.UUID) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(id, ownerID, testRoute(t), 2.5, 40, time.Now().UTC())
	require.NoError(t, err)
	return l
}

func newPendingRequest(t *testing.T, id, listingID, courierID kernel.UUID) *request.PickupRequest {
	t.Helper()
	r, err := request.NewPickupRequest(id, listingID, courierID, time.Now().UTC())
	require.NoError(t, err)
	return r
}

func newCourierPlan(t *testing.T) *entitlement.Plan {
	t.Helper()
	plan, err := entitlement.NewPlan(
		kernel.NewUUID(), "Courier Basic", entitlement.RoleCourier, 5, 30, false, 9.99)
	require.NoError(t, err)
	return plan
}

func newActiveGrant(t *testing.T, holderID kernel.UUID) *entitlement.Grant {
	t.Helper()
	g, err := entitlement.NewGrant(kernel.NewUUID(), holderID, newCourierPlan(t), time.Now().UTC())
	require.NoError(t, err)
	return g
}

func newCourierProfile(t *testing.T, id kernel.UUID) *courier.Profile {
	t.Helper()
	p, err := courier.NewProfile(id, "Marta K.")
	require.NoError(t, err)
	return p
}
