package observability

import (
	"context"

	"github.com/hu-zza/Clim/pkg/domain"
)

// Chain returns hooks that call every non-nil callback of hooks in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var (
		transitions []func(context.Context, *domain.TransitionEvent)
		decisions   []func(context.Context, *domain.DecisionEvent)
		rejects     []func(context.Context, *domain.RejectEvent)
	)
	for _, h := range hooks {
		if h.OnTransition != nil {
			transitions = append(transitions, h.OnTransition)
		}
		if h.OnDecision != nil {
			decisions = append(decisions, h.OnDecision)
		}
		if h.OnReject != nil {
			rejects = append(rejects, h.OnReject)
		}
	}

	var out domain.LifecycleHooks
	if len(transitions) > 0 {
		out.OnTransition = func(ctx context.Context, e *domain.TransitionEvent) {
			for _, fn := range transitions {
				fn(ctx, e)
			}
		}
	}
	if len(decisions) > 0 {
		out.OnDecision = func(ctx context.Context, e *domain.DecisionEvent) {
			for _, fn := range decisions {
				fn(ctx, e)
			}
		}
	}
	if len(rejects) > 0 {
		out.OnReject = func(ctx context.Context, e *domain.RejectEvent) {
			for _, fn := range rejects {
				fn(ctx, e)
			}
		}
	}
	return out
}
