package commands

import (
	"errors"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrExpireGrantsCommandIsNotConstructed = errors.New(
	"ExpireGrantsCommand must be created via NewExpireGrantsCommand constructor",
)

// ExpireGrantsCommand triggers deactivation of every active grant whose
// validity window has passed. Run periodically by the maintenance scheduler.
type ExpireGrantsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireGrantsCommand creates a parameterless command to expire grants.
func NewExpireGrantsCommand() ExpireGrantsCommand {
	return ExpireGrantsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireGrantsCommand) Validate() error {
	return c.guard.Validate(ErrExpireGrantsCommandIsNotConstructed)
}
