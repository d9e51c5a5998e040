package commands

import (
	"errors"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrActivateGrantCommandIsNotConstructed = errors.New(
	"ActivateGrantCommand must be created via NewActivateGrantCommand constructor",
)

// ActivateGrantCommand represents a subscription purchase: activate a fresh
// grant from the given plan for the holder.
type ActivateGrantCommand struct { //nolint:recvcheck //using for validation
	grantID  kernel.UUID
	holderID kernel.UUID
	planID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewActivateGrantCommand creates a command to activate a grant.
func NewActivateGrantCommand(grantID, holderID, planID kernel.UUID) (ActivateGrantCommand, error) {
	cmd := ActivateGrantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setGrantID(grantID),
		cmd.setHolderID(holderID),
		cmd.setPlanID(planID),
	); err != nil {
		return ActivateGrantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ActivateGrantCommand) Validate() error {
	return c.guard.Validate(ErrActivateGrantCommandIsNotConstructed)
}

// GrantID returns the identifier for the new grant.
func (c ActivateGrantCommand) GrantID() kernel.UUID { return c.grantID }

// HolderID returns the purchasing user.
func (c ActivateGrantCommand) HolderID() kernel.UUID { return c.holderID }

// PlanID returns the purchased plan.
func (c ActivateGrantCommand) PlanID() kernel.UUID { return c.planID }

func (c *ActivateGrantCommand) setGrantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.grantID = id
	return nil
}

func (c *ActivateGrantCommand) setHolderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.holderID = id
	return nil
}

func (c *ActivateGrantCommand) setPlanID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.planID = id
	return nil
}
