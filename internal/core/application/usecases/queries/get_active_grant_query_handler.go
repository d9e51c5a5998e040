package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
)

// GetActiveGrantQueryHandler reads the holder's active grant joined with its
// plan.
type GetActiveGrantQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveGrantQueryHandler creates a handler for the grant query.
func NewGetActiveGrantQueryHandler(db *gorm.DB) GetActiveGrantQueryHandler {
	return GetActiveGrantQueryHandler{db: db}
}

// Handle returns the holder's active grant, or an errs.ObjectNotFoundError
// when the holder has none. Expiry is not checked here: a lapsed grant shows
// with its past expiry date until the maintenance sweep retires it.
func (h GetActiveGrantQueryHandler) Handle(
	ctx context.Context,
	query GetActiveGrantQuery,
) (*GetActiveGrantQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			g.id,
			p.name,
			p.role,
			p.is_premium,
			g.remaining_usage,
			g.expires_at
		FROM grants g
		JOIN plans p ON p.id = g.plan_id
		WHERE g.holder_id = ? AND g.is_active
		ORDER BY g.created_at DESC
		LIMIT 1
	`, query.HolderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("activeGrant", query.HolderID())
	}

	var resp GetActiveGrantQueryResponse
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&resp.PlanName,
		&resp.PlanRole,
		&resp.IsPremium,
		&resp.RemainingUsage,
		&resp.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}

	grantID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.GrantID = grantID

	return &resp, nil
}
