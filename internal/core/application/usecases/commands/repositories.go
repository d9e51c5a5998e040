// Package commands contains the write operations of the allocation core.
// Each operation is a constructor-guarded command plus a handler that runs
// it inside a unit-of-work transaction: validate, begin, mutate through
// repositories, commit, then dispatch outbound effects.
package commands

import (
	"context"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
)

// Unit-of-work interfaces scoped to what each command actually touches.
// Narrow interfaces keep handlers honest about their transaction footprint.
type (
	// TxManager handles the transaction lifecycle of one business operation.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ListingRepoFactory provides the listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// RequestRepoFactory provides the pickup request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// CourierRepoFactory provides the courier profile repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// EntitlementRepoFactory provides the entitlement repository within a transaction.
	EntitlementRepoFactory interface {
		EntitlementRepository() ports.EntitlementRepository
	}

	// ListingUoW covers listing-only operations (advance, reopen).
	ListingUoW interface {
		TxManager
		ListingRepoFactory
	}

	// ListingUoWFactory creates listing-only units of work.
	ListingUoWFactory interface {
		Create() ListingUoW
	}

	// RequestUoW covers request submission and explicit rejection.
	RequestUoW interface {
		TxManager
		ListingRepoFactory
		RequestRepoFactory
	}

	// RequestUoWFactory creates request units of work.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// LedgerUoW covers entitlement-only operations (grant, expiry).
	LedgerUoW interface {
		TxManager
		EntitlementRepoFactory
	}

	// LedgerUoWFactory creates ledger units of work.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// CourierUoW covers courier profile registration.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates courier units of work.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// MarketUoW covers operations that pair listings with the ledger:
	// metered listing creation and ranking recomputation.
	MarketUoW interface {
		TxManager
		ListingRepoFactory
		EntitlementRepoFactory
	}

	// MarketUoWFactory creates market units of work.
	MarketUoWFactory interface {
		Create() MarketUoW
	}

	// DeliveryUoW covers delivery confirmation, which updates the listing
	// and the courier's statistics together.
	DeliveryUoW interface {
		TxManager
		ListingRepoFactory
		CourierRepoFactory
	}

	// DeliveryUoWFactory creates delivery units of work.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ArbitrationUoW covers approveRequest, the one operation that spans all
	// four repositories in a single atomic unit.
	ArbitrationUoW interface {
		TxManager
		ListingRepoFactory
		RequestRepoFactory
		CourierRepoFactory
		EntitlementRepoFactory
	}

	// ArbitrationUoWFactory creates arbitration units of work.
	ArbitrationUoWFactory interface {
		Create() ArbitrationUoW
	}
)

// LedgerConfig is the ledger policy resolved once at process start.
type LedgerConfig struct {
	// UnmeteredPostings disables quota consumption on listing creation.
	// Pickup approval is always metered; this switch only selects whether
	// posting is metered too. Default false: both sides consume quota.
	UnmeteredPostings bool
}
