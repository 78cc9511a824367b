package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hu-zza/Clim/internal/messages"
	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/muesli/termenv"
)

// HeaderStyle controls what is printed above the option list.
type HeaderStyle string

const (
	HeaderHidden   HeaderStyle = "hidden"   // No header
	HeaderStandard HeaderStyle = "standard" // Current position only
	HeaderHistory  HeaderStyle = "history"  // Visited positions and the current one
)

// ParseHeaderStyle parses s case-insensitively.
func ParseHeaderStyle(s string) (HeaderStyle, error) {
	h := HeaderStyle(strings.ToLower(strings.TrimSpace(s)))
	switch h {
	case HeaderHidden, HeaderStandard, HeaderHistory:
		return h, nil
	case "":
		return HeaderStandard, nil
	}
	return "", fmt.Errorf("unknown header style %q", s)
}

// Presenter writes menus to an output stream and diagnostics to an error stream.
type Presenter struct {
	out     *termenv.Output
	errOut  *termenv.Output
	profile termenv.Profile
	catalog *messages.Catalog
	header  HeaderStyle
	footer  bool
	render  func(string) (string, error)
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithHeader sets the header style.
func WithHeader(h HeaderStyle) Option {
	return func(p *Presenter) {
		p.header = h
	}
}

// WithFooter toggles the short license notice under every menu.
func WithFooter(enabled bool) Option {
	return func(p *Presenter) {
		p.footer = enabled
	}
}

// WithProfile sets the color profile of both streams. The default is termenv.Ascii.
func WithProfile(profile termenv.Profile) Option {
	return func(p *Presenter) {
		p.profile = profile
	}
}

// WithCatalog replaces the bundled message catalog.
func WithCatalog(c *messages.Catalog) Option {
	return func(p *Presenter) {
		if c != nil {
			p.catalog = c
		}
	}
}

// WithRenderer sets the markdown renderer used for the license notice.
func WithRenderer(fn func(string) (string, error)) Option {
	return func(p *Presenter) {
		p.render = fn
	}
}

// New creates a Presenter.
func New(out, errOut io.Writer, opts ...Option) *Presenter {
	p := &Presenter{
		profile: termenv.Ascii,
		catalog: messages.Default(),
		header:  HeaderStandard,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.out = termenv.NewOutput(out, termenv.WithProfile(p.profile))
	p.errOut = termenv.NewOutput(errOut, termenv.WithProfile(p.profile))
	return p
}

// Menu prints the header, the options and the optional footer of v.
func (p *Presenter) Menu(v domain.View) error {
	var sb strings.Builder

	switch p.header {
	case HeaderStandard:
		line := p.catalog.Format(messages.MenuPosition, map[string]any{"Position": v.Position.Name})
		sb.WriteString(p.out.String(line).Bold().Foreground(p.out.Color("#818cf8")).String())
		sb.WriteString("\n")
	case HeaderHistory:
		trail := append(domain.Names(v.History), v.Position.Name)
		line := p.catalog.Format(messages.MenuHistory, map[string]any{"Trail": strings.Join(trail, " > ")})
		sb.WriteString(p.out.String(line).Bold().Foreground(p.out.Color("#a78bfa")).String())
		sb.WriteString("\n")
	}

	if len(v.Options) == 0 {
		sb.WriteString(p.out.String(p.catalog.Format(messages.NoOptions, nil)).Faint().String())
		sb.WriteString("\n")
	}
	for _, opt := range v.Options {
		var line string
		if v.Numbered() {
			line = p.catalog.Format(messages.MenuOrdinalOption, map[string]any{"Ordinal": opt.Ordinal, "Name": opt.Name})
		} else {
			line = p.catalog.Format(messages.MenuOption, map[string]any{"Name": opt.Name})
		}
		style := p.out.String(line)
		if opt.Kind == domain.KindLeaf {
			style = style.Foreground(p.out.Color("#f472b6"))
		}
		sb.WriteString(style.String())
		sb.WriteString("\n")
	}

	if p.footer {
		sb.WriteString("\n")
		sb.WriteString(p.out.String(p.catalog.Format(messages.ShortLicense, nil)).Faint().String())
		sb.WriteString("\n")
	}

	_, err := io.WriteString(p.out, sb.String())
	return err
}

// Diagnostic reports a rejected input on the error stream.
func (p *Presenter) Diagnostic(input string, cause error) {
	var ie *domain.InputError
	if errors.As(cause, &ie) {
		cause = ie.Cause
	}
	line := p.catalog.Format(messages.ProcessingFailed, map[string]any{"Input": input, "Cause": cause})
	fmt.Fprintln(p.errOut, p.errOut.String(line).Foreground(p.errOut.Color("#fb7185")).String())
}

// License prints the full license notice, rendered as markdown when a renderer is set.
func (p *Presenter) License() error {
	text := p.catalog.Format(messages.License, nil)
	if p.render != nil {
		if rendered, err := p.render(text); err == nil {
			text = rendered
		}
	}
	_, err := fmt.Fprintln(p.out, strings.TrimRight(text, "\n"))
	return err
}

// Prompt prints the input prompt without a newline.
func (p *Presenter) Prompt() {
	fmt.Fprint(p.out, p.catalog.Format(messages.Prompt, nil))
}

// Goodbye prints the farewell line.
func (p *Presenter) Goodbye() {
	fmt.Fprintln(p.out, p.catalog.Format(messages.Goodbye, nil))
}
