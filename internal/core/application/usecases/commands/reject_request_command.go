package commands

import (
	"errors"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/guard"
)

var ErrRejectRequestCommandIsNotConstructed = errors.New(
	"RejectRequestCommand must be created via NewRejectRequestCommand constructor",
)

// RejectRequestCommand represents the sender's explicit decline of a single
// pickup request.
type RejectRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectRequestCommand creates a command to reject a pickup request.
func NewRejectRequestCommand(requestID kernel.UUID) (RejectRequestCommand, error) {
	cmd := RejectRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestID(requestID); err != nil {
		return RejectRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectRequestCommandIsNotConstructed)
}

// RequestID returns the request being declined.
func (c RejectRequestCommand) RequestID() kernel.UUID { return c.requestID }

func (c *RejectRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}
