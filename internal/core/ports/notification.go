package ports

import (
	"context"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
)

// Effect kinds understood by the notification boundary.
const (
	EffectKindSuccess = "SUCCESS"
	EffectKindInfo    = "INFO"
	EffectKindWarning = "WARNING"
)

// OutboundEffect describes a user-facing side effect produced by a core
// operation. Core operations return effect descriptors instead of talking to
// delivery channels; handlers dispatch them after the transaction commits,
// which keeps the core pure and testable.
type OutboundEffect struct {
	UserID kernel.UUID
	Title  string
	Body   string
	Kind   string
}

// NotificationSink receives outbound effects fire-and-forget. A failing sink
// must never roll back or fail the operation that produced the effect;
// implementations log and move on.
type NotificationSink interface {
	Emit(ctx context.Context, effect OutboundEffect)
}
