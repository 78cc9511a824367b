package clim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hu-zza/Clim/internal/logging"
	"github.com/hu-zza/Clim/internal/messages"
	"github.com/hu-zza/Clim/internal/presentation/console"
	"github.com/hu-zza/Clim/internal/runtime"
	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/parameter"
	"github.com/hu-zza/Clim/pkg/structure"
	"github.com/muesli/termenv"
)

// HeaderStyle controls the line printed above the option list.
type HeaderStyle = console.HeaderStyle

const (
	HeaderHidden   = console.HeaderHidden
	HeaderStandard = console.HeaderStandard
	HeaderHistory  = console.HeaderHistory
)

// ParseHeaderStyle parses a header style name.
func ParseHeaderStyle(s string) (HeaderStyle, error) {
	return console.ParseHeaderStyle(s)
}

// Outcome reports what ChooseOption did with one input line.
type Outcome = runtime.Outcome

// OutcomeKind classifies an Outcome.
type OutcomeKind = runtime.OutcomeKind

const (
	OutcomeIgnored  = runtime.OutcomeIgnored
	OutcomeLicense  = runtime.OutcomeLicense
	OutcomeMoved    = runtime.OutcomeMoved
	OutcomeBack     = runtime.OutcomeBack
	OutcomeRejected = runtime.OutcomeRejected
)

// MessageFile is a TOML message file, named like "menu.en.toml", whose
// templates replace the bundled ones by id.
type MessageFile = messages.File

// ContentRenderer transforms markdown before it is printed, e.g. into ANSI.
type ContentRenderer func(string) (string, error)

// Menu is the high-level entry point of the library.
// It navigates a finalized Structure and prints menus and diagnostics.
// A Menu is not safe for concurrent use; a Structure may be shared by many Menus.
type Menu struct {
	engine    *runtime.Engine
	presenter *console.Presenter

	control   domain.ControlType
	matcher   *parameter.Matcher
	backToken string
	hooks     domain.LifecycleHooks
	logger    *slog.Logger

	out          io.Writer
	errOut       io.Writer
	header       HeaderStyle
	footer       bool
	profile      termenv.Profile
	catalog      *messages.Catalog
	messageFiles []messages.File
	renderer     ContentRenderer
	engineOpts   []runtime.EngineOption

	Name string
}

// Option defines a functional option for configuring the Menu.
type Option func(*Menu)

// WithControl sets the input style. The default is domain.ControlNominal.
func WithControl(control domain.ControlType) Option {
	return func(m *Menu) {
		m.control = control
	}
}

// WithMatcher sets the command regex and parameter patterns used in parametric mode.
func WithMatcher(matcher *parameter.Matcher) Option {
	return func(m *Menu) {
		m.matcher = matcher
	}
}

// WithBackToken enables going back one position by typing token.
func WithBackToken(token string) Option {
	return func(m *Menu) {
		m.backToken = token
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Menu) {
		m.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the menu.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

// WithOutput sets where menus and the license are printed (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(m *Menu) {
		m.out = w
	}
}

// WithErrorOutput sets where diagnostics are printed (default os.Stderr).
func WithErrorOutput(w io.Writer) Option {
	return func(m *Menu) {
		m.errOut = w
	}
}

// WithHeader sets the header style.
func WithHeader(h HeaderStyle) Option {
	return func(m *Menu) {
		m.header = h
	}
}

// WithFooter prints the short license notice under every menu.
func WithFooter(enabled bool) Option {
	return func(m *Menu) {
		m.footer = enabled
	}
}

// WithColorProfile enables terminal colors. The default is termenv.Ascii (no styling).
func WithColorProfile(profile termenv.Profile) Option {
	return func(m *Menu) {
		m.profile = profile
	}
}

// WithMessages overrides bundled message templates with TOML files.
func WithMessages(files ...MessageFile) Option {
	return func(m *Menu) {
		m.messageFiles = append(m.messageFiles, files...)
	}
}

// WithLicenseRenderer renders the license notice, e.g. with glamour.
func WithLicenseRenderer(r ContentRenderer) Option {
	return func(m *Menu) {
		m.renderer = r
	}
}

// WithLicensePhrases replaces the inputs that print the license notice.
func WithLicensePhrases(phrases ...string) Option {
	return func(m *Menu) {
		m.engineOpts = append(m.engineOpts, runtime.WithLicensePhrases(phrases...))
	}
}

// WithName labels the menu in logs.
func WithName(name string) Option {
	return func(m *Menu) {
		m.Name = name
	}
}

// New creates a Menu positioned at the structure's initial node.
func New(s *structure.Structure, opts ...Option) (*Menu, error) {
	m := &Menu{
		control: domain.ControlNominal,
		logger:  logging.NewNop(),
		out:     os.Stdout,
		errOut:  os.Stderr,
		header:  HeaderStandard,
		profile: termenv.Ascii,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	if m.Name != "" {
		m.logger = m.logger.With("menu", m.Name)
	}

	catalog, err := messages.New(m.messageFiles...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMenu, err)
	}
	m.catalog = catalog

	engineOpts := []runtime.EngineOption{
		runtime.WithLogger(m.logger),
		runtime.WithLifecycleHooks(m.hooks),
		runtime.WithMatcher(m.matcher),
		runtime.WithBackToken(m.backToken),
	}
	engineOpts = append(engineOpts, m.engineOpts...)

	engine, err := runtime.NewEngine(s, m.control, engineOpts...)
	if err != nil {
		return nil, err
	}
	m.engine = engine

	presenterOpts := []console.Option{
		console.WithHeader(m.header),
		console.WithFooter(m.footer),
		console.WithProfile(m.profile),
		console.WithCatalog(m.catalog),
	}
	if m.renderer != nil {
		presenterOpts = append(presenterOpts, console.WithRenderer(m.renderer))
	}
	m.presenter = console.New(m.out, m.errOut, presenterOpts...)
	return m, nil
}

// ListOptions prints the header and the options of the current position.
func (m *Menu) ListOptions() error {
	return m.presenter.Menu(m.engine.ListOptions())
}

// View returns the current position and its options without printing anything.
func (m *Menu) View() domain.View {
	return m.engine.ListOptions()
}

// ChooseOption interprets one input line. Rejected inputs are reported on the
// error output; license phrases print the license notice.
func (m *Menu) ChooseOption(ctx context.Context, input string) Outcome {
	out := m.engine.ChooseOption(ctx, input)
	switch out.Kind {
	case OutcomeRejected:
		m.presenter.Diagnostic(input, out.Err)
	case OutcomeLicense:
		if err := m.presenter.License(); err != nil {
			m.logger.Warn("failed to print license", "err", err)
		}
	}
	return out
}

// Current returns the current position.
func (m *Menu) Current() domain.Position {
	return m.engine.Current()
}

// State returns a copy of the navigation state.
func (m *Menu) State() *domain.State {
	return m.engine.State()
}

// Control returns the input style of the menu.
func (m *Menu) Control() domain.ControlType {
	return m.engine.Control()
}

// Structure returns the navigated structure.
func (m *Menu) Structure() *structure.Structure {
	return m.engine.Structure()
}

func (m *Menu) prompt() {
	m.presenter.Prompt()
}

func (m *Menu) goodbye() {
	m.presenter.Goodbye()
}

func (m *Menu) reportf(input string, err error) {
	m.presenter.Diagnostic(input, err)
}
