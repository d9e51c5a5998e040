package entitlementrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/entitlement"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
)

// GormEntitlementRepository implements EntitlementRepository using GORM.
type GormEntitlementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEntitlementRepository creates a new GORM entitlement repository.
func NewGormEntitlementRepository(db *gorm.DB, tracker aggregateTracker) *GormEntitlementRepository {
	return &GormEntitlementRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddPlan saves a new subscription plan to the database.
func (r *GormEntitlementRepository) AddPlan(ctx context.Context, plan *entitlement.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	dto := planFromDomain(plan)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(plan.ID(), plan)
	return nil
}

// GetPlan retrieves a plan by ID.
func (r *GormEntitlementRepository) GetPlan(ctx context.Context, id kernel.UUID) (*entitlement.Plan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PlanDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("plan", id.String())
		}
		return nil, err
	}

	return planToDomain(dto)
}

// AddGrant saves a newly activated grant to the database.
func (r *GormEntitlementRepository) AddGrant(ctx context.Context, grant *entitlement.Grant) error {
	if err := grant.Validate(); err != nil {
		return err
	}

	dto := grantFromDomain(grant)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(grant.ID(), grant)
	return nil
}

// UpdateGrant saves consumption or deactivation of a grant. Deactivation
// zeroes usage and clears the active flag, so every column is written.
func (r *GormEntitlementRepository) UpdateGrant(ctx context.Context, grant *entitlement.Grant) error {
	if err := grant.Validate(); err != nil {
		return err
	}

	dto := grantFromDomain(grant)
	result := r.db.WithContext(ctx).
		Model(&GrantDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(grant.ID(), grant)
	return nil
}

// GetGrant retrieves a grant by ID.
func (r *GormEntitlementRepository) GetGrant(ctx context.Context, id kernel.UUID) (*entitlement.Grant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GrantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("grant", id.String())
		}
		return nil, err
	}

	return grantToDomain(dto)
}

// GetConsumableGrant retrieves the holder's active, non-expired grant with
// remaining usage. The row is locked for update so a concurrent consumer in
// another transaction waits rather than double-spending the last unit.
func (r *GormEntitlementRepository) GetConsumableGrant(
	ctx context.Context,
	holderID kernel.UUID,
	now time.Time,
) (*entitlement.Grant, error) {
	if err := holderID.Validate(); err != nil {
		return nil, err
	}

	var dto GrantDTO
	err := r.db.WithContext(ctx).
		Clauses(forUpdate()).
		First(&dto,
			"holder_id = ? AND is_active AND expires_at > ? AND remaining_usage > 0",
			holderID.Bytes(), now.UTC()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("consumableGrant", holderID.String())
		}
		return nil, err
	}

	return grantToDomain(dto)
}

// GetActiveGrantsByHolder retrieves every grant still flagged active for the
// holder.
func (r *GormEntitlementRepository) GetActiveGrantsByHolder(
	ctx context.Context,
	holderID kernel.UUID,
) ([]*entitlement.Grant, error) {
	if err := holderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []GrantDTO
	err := r.db.WithContext(ctx).Find(&dtos,
		"holder_id = ? AND is_active", holderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return grantsToDomain(dtos)
}

// GetExpiredActiveGrants retrieves every active grant whose expiry lies
// before now.
func (r *GormEntitlementRepository) GetExpiredActiveGrants(
	ctx context.Context,
	now time.Time,
) ([]*entitlement.Grant, error) {
	var dtos []GrantDTO
	err := r.db.WithContext(ctx).Find(&dtos,
		"is_active AND expires_at < ?", now.UTC()).Error
	if err != nil {
		return nil, err
	}

	return grantsToDomain(dtos)
}

// HasActivePremiumGrant reports whether the holder owns an active,
// non-expired grant on a premium plan.
func (r *GormEntitlementRepository) HasActivePremiumGrant(
	ctx context.Context,
	holderID kernel.UUID,
	now time.Time,
) (bool, error) {
	if err := holderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&GrantDTO{}).
		Joins("JOIN plans ON plans.id = grants.plan_id").
		Where("grants.holder_id = ? AND grants.is_active AND grants.expires_at > ? AND plans.is_premium",
			holderID.Bytes(), now.UTC()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

func grantsToDomain(dtos []GrantDTO) ([]*entitlement.Grant, error) {
	grants := make([]*entitlement.Grant, 0, len(dtos))
	for _, dto := range dtos {
		grant, err := grantToDomain(dto)
		if err != nil {
			return nil, err
		}
		grants = append(grants, grant)
	}
	return grants, nil
}
