// Package entitlementrepo persists subscription plans and grants: DTO
// mapping plus a GORM repository implementing ports.EntitlementRepository.
package entitlementrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/entitlement"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
)

// PlanDTO represents the database structure for subscription plans.
type PlanDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Role         string
	MonthlyLimit int
	DurationDays int
	IsPremium    bool
	Price        float64
}

// TableName overrides GORM's default naming to "plans".
func (PlanDTO) TableName() string {
	return "plans"
}

// GrantDTO represents the database structure for entitlement grants.
type GrantDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	HolderID       uuid.UUID `gorm:"type:uuid;index"`
	PlanID         uuid.UUID `gorm:"type:uuid;index"`
	RemainingUsage int
	IsActive       bool `gorm:"index"`
	ExpiresAt      time.Time
	CreatedAt      time.Time
}

// TableName overrides GORM's default naming to "grants".
func (GrantDTO) TableName() string {
	return "grants"
}

func planFromDomain(aggregate *entitlement.Plan) PlanDTO {
	return PlanDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Role:         aggregate.Role().String(),
		MonthlyLimit: aggregate.MonthlyLimit(),
		DurationDays: aggregate.DurationDays(),
		IsPremium:    aggregate.IsPremium(),
		Price:        aggregate.Price(),
	}
}

func planToDomain(dto PlanDTO) (*entitlement.Plan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := entitlement.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return entitlement.RestorePlan(
		id,
		dto.Name,
		role,
		dto.MonthlyLimit,
		dto.DurationDays,
		dto.IsPremium,
		dto.Price,
	)
}

func grantFromDomain(aggregate *entitlement.Grant) GrantDTO {
	return GrantDTO{
		ID:             aggregate.ID().Bytes(),
		HolderID:       aggregate.HolderID().Bytes(),
		PlanID:         aggregate.PlanID().Bytes(),
		RemainingUsage: aggregate.RemainingUsage(),
		IsActive:       aggregate.IsActive(),
		ExpiresAt:      aggregate.ExpiresAt(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

func grantToDomain(dto GrantDTO) (*entitlement.Grant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	holderID, err := kernel.UUIDFromBytes(dto.HolderID[:])
	if err != nil {
		return nil, err
	}

	planID, err := kernel.UUIDFromBytes(dto.PlanID[:])
	if err != nil {
		return nil, err
	}

	return entitlement.RestoreGrant(
		id,
		holderID,
		planID,
		dto.RemainingUsage,
		dto.IsActive,
		dto.ExpiresAt,
		dto.CreatedAt,
	)
}
