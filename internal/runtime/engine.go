package runtime

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hu-zza/Clim/internal/logging"
	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/parameter"
	"github.com/hu-zza/Clim/pkg/structure"
)

// Engine is the menu state machine.
// It owns one navigation State over a shared, finalized Structure.
// An Engine is not safe for concurrent use.
type Engine struct {
	structure *structure.Structure
	control   domain.ControlType
	matcher   *parameter.Matcher

	state   *domain.State
	options []domain.Position

	backToken string
	license   map[string]bool

	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMatcher sets the parameter matcher. Required in parametric mode.
func WithMatcher(m *parameter.Matcher) EngineOption {
	return func(e *Engine) {
		e.matcher = m
	}
}

// WithBackToken enables going back one position with token. Empty disables it.
func WithBackToken(token string) EngineOption {
	return func(e *Engine) {
		e.backToken = strings.TrimSpace(token)
	}
}

// WithLicensePhrases replaces domain.LicensePhrases. No phrases disables license handling.
func WithLicensePhrases(phrases ...string) EngineOption {
	return func(e *Engine) {
		e.license = phraseSet(phrases)
	}
}

// NewEngine creates an Engine at the structure's initial position.
func NewEngine(s *structure.Structure, control domain.ControlType, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		structure: s,
		control:   control,
		license:   phraseSet(domain.LicensePhrases),
		logger:    logging.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.validate(); err != nil {
		return nil, err
	}

	e.state = domain.NewState(s.Initial())
	e.refreshOptions()
	return e, nil
}

func (e *Engine) validate() error {
	if e.structure == nil {
		return fmt.Errorf("%w: nil structure", domain.ErrInvalidMenu)
	}
	if !e.structure.Finalized() {
		return fmt.Errorf("%w: structure is not finalized", domain.ErrInvalidMenu)
	}
	if !e.control.Valid() {
		return fmt.Errorf("%w: unknown control type %q", domain.ErrInvalidMenu, e.control)
	}
	if e.control == domain.ControlParametric && e.matcher == nil {
		return fmt.Errorf("%w: parametric control needs a parameter matcher", domain.ErrInvalidMenu)
	}
	if e.matcher != nil {
		for _, name := range e.matcher.Leaves() {
			p, ok := e.structure.Lookup(name)
			if !ok || !p.IsLeaf() {
				return fmt.Errorf("%w: parameter pattern for %q, which is not a leaf", domain.ErrInvalidMenu, name)
			}
		}
	}
	return nil
}

// Control returns the fixed control type.
func (e *Engine) Control() domain.ControlType {
	return e.control
}

// Structure returns the underlying structure.
func (e *Engine) Structure() *structure.Structure {
	return e.structure
}

// Current returns the current Node.
func (e *Engine) Current() domain.Position {
	return e.state.Current
}

// State returns a copy of the navigation state.
func (e *Engine) State() *domain.State {
	return e.state.Clone()
}

// ListOptions recomputes and returns the options of the current position.
func (e *Engine) ListOptions() domain.View {
	e.refreshOptions()
	history := append([]domain.Position{}, e.state.History...)
	return domain.NewView(e.state.Current, history, e.control, e.options)
}

func (e *Engine) refreshOptions() {
	entry, err := e.structure.Entry(e.state.Current.ID)
	if err != nil {
		e.logger.Error("current position has no entry", "position", e.state.Current.Name, "err", err)
		e.options = nil
		return
	}
	e.options = entry.Links()
}

func phraseSet(phrases []string) map[string]bool {
	set := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		if n := normalizePhrase(p); n != "" {
			set[n] = true
		}
	}
	return set
}

func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
