package observability

import (
	"context"
	"log/slog"

	"github.com/hu-zza/Clim/pkg/domain"
)

// LogHooks returns lifecycle hooks that write one record per event.
// Transitions and decisions log at Info, rejections at Warn.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.InfoContext(ctx, "transition",
				"from", e.From.Name,
				"via", e.Via.Name,
				"to", e.To.Name,
				"back", e.Back,
			)
		},
		OnDecision: func(ctx context.Context, e *domain.DecisionEvent) {
			logger.InfoContext(ctx, "decision",
				"leaf", e.Leaf,
				"index", e.Index,
				"duration", e.Duration,
				"is_error", e.IsError,
			)
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			logger.WarnContext(ctx, "input rejected",
				"input", e.Input,
				"position", e.Position,
				"reason", e.Reason,
				"err", e.Err,
			)
		},
	}
}
