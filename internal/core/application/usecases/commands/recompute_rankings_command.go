package commands

import (
	"errors"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrRecomputeRankingsCommandIsNotConstructed = errors.New(
	"RecomputeRankingsCommand must be created via NewRecomputeRankingsCommand constructor",
)

// RecomputeRankingsCommand triggers a fresh scoring pass over every open
// listing. Run periodically by the maintenance scheduler so age decay keeps
// reshuffling the marketplace.
type RecomputeRankingsCommand struct {
	guard guard.ConstructorGuard
}

// NewRecomputeRankingsCommand creates a parameterless command to recompute
// ranking scores.
func NewRecomputeRankingsCommand() RecomputeRankingsCommand {
	return RecomputeRankingsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RecomputeRankingsCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeRankingsCommandIsNotConstructed)
}
