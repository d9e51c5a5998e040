package commands

import (
	"errors"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrApproveRequestCommandIsNotConstructed = errors.New(
	"ApproveRequestCommand must be created via NewApproveRequestCommand constructor",
)

// ApproveRequestCommand represents the sender's arbitration decision:
// pick one pickup request as the winner.
type ApproveRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveRequestCommand creates a command to approve a pickup request.
func NewApproveRequestCommand(requestID kernel.UUID) (ApproveRequestCommand, error) {
	cmd := ApproveRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestID(requestID); err != nil {
		return ApproveRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveRequestCommandIsNotConstructed)
}

// RequestID returns the request chosen as the winner.
func (c ApproveRequestCommand) RequestID() kernel.UUID { return c.requestID }

func (c *ApproveRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}
