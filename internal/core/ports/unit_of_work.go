package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per business operation,
// isolating concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a business operation. All
// repositories obtained from one unit of work share its transaction, which
// is what makes approveRequest's quota decrement, listing transition, and
// cascading rejections commit together or not at all.
type UnitOfWork interface {
	// Begin starts the database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to defer after a
	// commit: rolling back a finished transaction reports an error that
	// callers ignore.
	Rollback(ctx context.Context) error

	// ListingRepository returns a listing repository bound to the
	// current transaction.
	ListingRepository() ListingRepository

	// RequestRepository returns a pickup request repository bound to the
	// current transaction.
	RequestRepository() RequestRepository

	// CourierRepository returns a courier profile repository bound to the
	// current transaction.
	CourierRepository() CourierRepository

	// EntitlementRepository returns an entitlement repository bound to the
	// current transaction.
	EntitlementRepository() EntitlementRepository
}
