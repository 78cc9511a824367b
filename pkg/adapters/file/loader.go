package file

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	clim "github.com/hu-zza/Clim"
	"github.com/hu-zza/Clim/internal/logging"
	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/dsl"
	"github.com/hu-zza/Clim/pkg/parameter"
	"github.com/hu-zza/Clim/pkg/structure"
)

// Config is a loaded menu: a finalized structure plus the settings a Menu needs.
type Config struct {
	Name      string
	Structure *structure.Structure
	Control   domain.ControlType
	Header    clim.HeaderStyle
	Back      string
	// Matcher is set in parametric mode or when any leaf declares parameters.
	Matcher *parameter.Matcher
}

type loader struct {
	logger   *slog.Logger
	deciders map[string]domain.Decider
}

// Option configures loading.
type Option func(*loader)

// WithLogger sets the logger used for build warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(l *loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithDecider supplies the Decider of a leaf from code. It takes precedence
// over the decide block of the file; the forward table still comes from the file.
func WithDecider(leaf string, d domain.Decider) Option {
	return func(l *loader) {
		l.deciders[leaf] = d
	}
}

// Load reads and builds the menu file at path.
func Load(path string, opts ...Option) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	cfg, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return cfg, nil
}

// Parse builds a menu from YAML or JSON content.
func Parse(data []byte, opts ...Option) (*Config, error) {
	l := &loader{
		logger:   logging.NewNop(),
		deciders: make(map[string]domain.Decider),
	}
	for _, opt := range opts {
		opt(l)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return l.build(doc)
}

func (l *loader) build(doc *Document) (*Config, error) {
	var problems []error

	control := domain.ControlNominal
	if doc.Control != "" {
		c, err := domain.ParseControlType(doc.Control)
		if err != nil {
			problems = append(problems, err)
		}
		control = c
	}
	header, err := clim.ParseHeaderStyle(doc.Header)
	if err != nil {
		problems = append(problems, err)
	}

	names := make([]string, 0, len(doc.Leaves))
	for name := range doc.Leaves {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		bindings    []domain.LeafBinding
		matcherOpts []parameter.MatcherOption
	)
	if doc.CommandRegex != "" {
		matcherOpts = append(matcherOpts, parameter.WithCommandRegex(doc.CommandRegex))
	}
	for _, name := range names {
		spec := doc.Leaves[name]

		d, ok := l.deciders[name]
		if !ok {
			d, err = decider(spec.Decide)
			if err != nil {
				problems = append(problems, fmt.Errorf("leaf %q: %w", name, err))
				continue
			}
		}
		bindings = append(bindings, domain.Bind(name, d, spec.Forward...))

		if spec.Parameters != nil {
			p, err := pattern(spec.Parameters)
			if err != nil {
				problems = append(problems, fmt.Errorf("leaf %q: %w", name, err))
				continue
			}
			matcherOpts = append(matcherOpts, parameter.WithPattern(name, p))
		}
	}
	s, err := dsl.New(dsl.WithLogger(l.logger)).
		Description(doc.Structure).
		Initial(doc.Initial).
		Bind(bindings...).
		Build()
	if err != nil {
		problems = append(problems, err)
	}

	var matcher *parameter.Matcher
	if control == domain.ControlParametric || len(matcherOpts) > 0 {
		matcher, err = parameter.NewMatcher(matcherOpts...)
		if err != nil {
			problems = append(problems, err)
		}
	}

	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}

	return &Config{
		Structure: s,
		Control:   control,
		Header:    header,
		Back:      doc.Back,
		Matcher:   matcher,
	}, nil
}

// MenuOptions returns the clim options that apply c.
func (c *Config) MenuOptions() []clim.Option {
	opts := []clim.Option{
		clim.WithName(c.Name),
		clim.WithControl(c.Control),
		clim.WithHeader(c.Header),
		clim.WithBackToken(c.Back),
	}
	if c.Matcher != nil {
		opts = append(opts, clim.WithMatcher(c.Matcher))
	}
	return opts
}

// NewMenu creates a Menu from c. Extra options are applied after the file's settings.
func (c *Config) NewMenu(extra ...clim.Option) (*clim.Menu, error) {
	return clim.New(c.Structure, append(c.MenuOptions(), extra...)...)
}
