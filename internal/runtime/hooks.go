package runtime

import (
	"context"

	"github.com/hu-zza/Clim/pkg/domain"
)

func (e *Engine) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: e.now(), Type: t}
}

func (e *Engine) emitTransition(ctx context.Context, t *domain.Transition) {
	if e.hooks.OnTransition == nil {
		return
	}
	e.hooks.OnTransition(ctx, &domain.TransitionEvent{
		EventBase:  e.event(domain.EventTransition),
		Transition: *t,
	})
}

func (e *Engine) emitDecision(ctx context.Context, ev *domain.DecisionEvent) {
	if e.hooks.OnDecision != nil {
		e.hooks.OnDecision(ctx, ev)
	}
}

func (e *Engine) emitReject(ctx context.Context, ev *domain.RejectEvent) {
	if e.hooks.OnReject != nil {
		e.hooks.OnReject(ctx, ev)
	}
}
