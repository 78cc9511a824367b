package observability

import (
	"context"
	"strconv"

	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the menu collectors.
type Metrics struct {
	Transitions      *prometheus.CounterVec
	Decisions        *prometheus.CounterVec
	DecisionDuration *prometheus.HistogramVec
	Rejections       *prometheus.CounterVec
	PositionsEntered *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg, if not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clim_transitions_total",
				Help: "Total number of successful menu moves",
			},
			[]string{"from", "to", "back"},
		),
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clim_decisions_total",
				Help: "Total number of leaf decisions",
			},
			[]string{"leaf", "outcome"},
		),
		DecisionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clim_decision_duration_seconds",
				Help:    "Duration of leaf decider calls",
				Buckets: prometheus.ExponentialBuckets(0.00001, 10, 7),
			},
			[]string{"leaf"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clim_rejections_total",
				Help: "Total number of rejected inputs",
			},
			[]string{"position", "reason"},
		),
		PositionsEntered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clim_position_visits_total",
				Help: "Total number of visits per menu node",
			},
			[]string{"position"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Transitions, m.Decisions, m.DecisionDuration, m.Rejections, m.PositionsEntered)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(e.From.Name, e.To.Name, strconv.FormatBool(e.Back)).Inc()
			m.PositionsEntered.WithLabelValues(e.To.Name).Inc()
		},
		OnDecision: func(_ context.Context, e *domain.DecisionEvent) {
			outcome := "ok"
			if e.IsError {
				outcome = "error"
			}
			m.Decisions.WithLabelValues(e.Leaf, outcome).Inc()
			m.DecisionDuration.WithLabelValues(e.Leaf).Observe(e.Duration.Seconds())
		},
		OnReject: func(_ context.Context, e *domain.RejectEvent) {
			m.Rejections.WithLabelValues(e.Position, e.Reason).Inc()
		},
	}
}
