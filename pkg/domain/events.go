package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTransition EventType = "transition"
	EventDecision   EventType = "decision"
	EventReject     EventType = "reject"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TransitionEvent is emitted after the current position changed (or was re-entered).
type TransitionEvent struct {
	EventBase
	Transition
}

// DecisionEvent is emitted after a Leaf's Decider returned.
type DecisionEvent struct {
	EventBase
	Leaf     string        `json:"leaf"`
	Index    int           `json:"index"`
	Duration time.Duration `json:"duration"`
	IsError  bool          `json:"is_error,omitempty"`
}

// RejectEvent is emitted when an input was rolled back.
type RejectEvent struct {
	EventBase
	Input    string `json:"input"`
	Position string `json:"position"`
	Reason   string `json:"reason"`
	Err      error  `json:"-"`
}

// LifecycleHooks defines callbacks for menu observability.
type LifecycleHooks struct {
	OnTransition func(context.Context, *TransitionEvent)
	OnDecision   func(context.Context, *DecisionEvent)
	OnReject     func(context.Context, *RejectEvent)
}
