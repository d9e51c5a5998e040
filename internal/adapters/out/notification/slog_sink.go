// Package notification provides the default outbound effect sink: a
// structured-log implementation standing in for email or push delivery.
package notification

import (
	"context"
	"log/slog"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
)

// SlogSink logs outbound effects instead of delivering them. Effects are
// fire-and-forget by contract, so logging is a complete implementation for
// environments without a delivery channel.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink writing to the given logger.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{
		logger: logger.With("component", "notification"),
	}
}

// Emit logs the effect.
func (s *SlogSink) Emit(ctx context.Context, effect ports.OutboundEffect) {
	s.logger.InfoContext(ctx, "outbound effect",
		"user_id", effect.UserID.String(),
		"kind", effect.Kind,
		"title", effect.Title,
		"body", effect.Body,
	)
}
