package dsl

import (
	"fmt"
	"log/slog"

	"github.com/hu-zza/Clim/internal/logging"
	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/registry"
	"github.com/hu-zza/Clim/pkg/structure"
)

// Builder collects a raw description, an initial position and leaf bindings,
// and turns them into a finalized structure.
//
// Build consumes the collected input: the Builder is empty afterwards,
// whether the build succeeded or not.
type Builder struct {
	raw      any
	hasRaw   bool
	initial  string
	bindings []domain.LeafBinding
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for build warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// New creates a new structure builder.
func New(opts ...Option) *Builder {
	b := &Builder{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Description sets the raw description.
func (b *Builder) Description(raw any) *Builder {
	b.raw = raw
	b.hasRaw = true
	return b
}

// Initial sets the initial Node name. It may be omitted when the description has exactly one Node.
func (b *Builder) Initial(name string) *Builder {
	b.initial = name
	return b
}

// Leaf binds a Decider and its forwarding table to a leaf name.
func (b *Builder) Leaf(name string, d domain.Decider, forward ...string) *Builder {
	return b.Bind(domain.Bind(name, d, forward...))
}

// Bind adds prepared bindings.
func (b *Builder) Bind(bindings ...domain.LeafBinding) *Builder {
	b.bindings = append(b.bindings, bindings...)
	return b
}

// Reset discards everything collected so far.
func (b *Builder) Reset() *Builder {
	b.raw = nil
	b.hasRaw = false
	b.initial = ""
	b.bindings = nil
	return b
}

// Build validates the collected input and returns a finalized structure.
// Every problem is reported in one *BuildError.
func (b *Builder) Build() (*structure.Structure, error) {
	raw, hasRaw, initial, bindings := b.raw, b.hasRaw, b.initial, b.bindings
	b.Reset()

	if !hasRaw {
		return nil, &BuildError{Problems: []error{fmt.Errorf("no description")}}
	}

	c := newCensus()
	c.walk("", "", raw)
	if len(c.problems) > 0 {
		return nil, &BuildError{Problems: c.problems}
	}

	leaves := c.leaves()
	problems := b.check(c, leaves, &initial, bindings)
	if len(problems) > 0 {
		return nil, &BuildError{Problems: problems}
	}

	byName := make(map[string]domain.LeafBinding, len(bindings))
	for _, bd := range bindings {
		byName[bd.Name] = bd
	}

	s, err := assemble(c, leaves, initial, byName)
	if err != nil {
		return nil, &BuildError{Problems: []error{err}}
	}

	b.logger.Debug("structure built",
		"nodes", len(c.nodes),
		"leaves", len(leaves),
		"initial", initial,
	)
	return s, nil
}

// check collects every structural problem and resolves an implicit initial Node.
func (b *Builder) check(c *census, leaves []string, initial *string, bindings []domain.LeafBinding) []error {
	var problems []error

	switch {
	case len(c.nodes) == 0:
		problems = append(problems, fmt.Errorf("description declares no nodes"))
	case *initial == "" && len(c.nodes) == 1:
		*initial = c.nodes[0]
	case *initial == "":
		problems = append(problems, fmt.Errorf("initial position is required with %d nodes", len(c.nodes)))
	case !c.isNode[*initial]:
		problems = append(problems, fmt.Errorf("initial position %q is not a node", *initial))
	}

	isLeaf := make(map[string]bool, len(leaves))
	for _, l := range leaves {
		isLeaf[l] = true
	}

	byName := make(map[string]domain.LeafBinding, len(bindings))
	for _, bd := range bindings {
		if !isLeaf[bd.Name] {
			kind := "unknown name"
			if c.isNode[bd.Name] {
				kind = "node"
			}
			b.logger.Warn("ignoring leaf binding", "name", bd.Name, "reason", kind)
			continue
		}
		if _, dup := byName[bd.Name]; dup {
			b.logger.Warn("leaf bound more than once, last binding wins", "name", bd.Name)
		}
		byName[bd.Name] = bd
	}

	for _, leaf := range leaves {
		bd, ok := byName[leaf]
		if !ok {
			problems = append(problems, fmt.Errorf("leaf %q has no binding", leaf))
			continue
		}
		if bd.Decider == nil {
			problems = append(problems, fmt.Errorf("leaf %q has no decider", leaf))
		}
		if len(bd.Forward) == 0 {
			problems = append(problems, fmt.Errorf("leaf %q has an empty forwarding table", leaf))
		}
		for _, f := range bd.Forward {
			if !c.isNode[f] {
				problems = append(problems, fmt.Errorf("leaf %q forwards to %q, which is not a node", leaf, f))
			}
		}
	}
	return problems
}

// assemble interns nodes then leaves, in first-seen order, and fills the arena.
func assemble(c *census, leaves []string, initial string, bindings map[string]domain.LeafBinding) (*structure.Structure, error) {
	reg := registry.NewRegistry()
	nodes := make(map[string]domain.Position, len(c.nodes))
	leafs := make(map[string]domain.Position, len(leaves))

	for _, name := range c.nodes {
		p, err := reg.Intern(name, domain.KindNode)
		if err != nil {
			return nil, err
		}
		nodes[name] = p
	}
	for _, name := range leaves {
		p, err := reg.Intern(name, domain.KindLeaf)
		if err != nil {
			return nil, err
		}
		leafs[name] = p
	}

	s := structure.New(reg)
	for _, name := range c.nodes {
		links := make([]domain.Position, 0, len(c.links[name]))
		for _, l := range c.links[name] {
			switch {
			case nodes[l].Kind != 0:
				links = append(links, nodes[l])
			case leafs[l].Kind != 0:
				links = append(links, leafs[l])
			default:
				return nil, fmt.Errorf("node %q links to unknown %q", name, l)
			}
		}
		n, err := domain.NewNode(nodes[name], links)
		if err != nil {
			return nil, err
		}
		s.Put(n)
	}

	for _, name := range leaves {
		bd := bindings[name]
		forward := make([]domain.Position, 0, len(bd.Forward))
		for _, f := range bd.Forward {
			p, ok := nodes[f]
			if !ok {
				return nil, fmt.Errorf("leaf %q forwards to unknown node %q", name, f)
			}
			forward = append(forward, p)
		}
		l, err := domain.NewLeaf(leafs[name], bd.Decider, forward)
		if err != nil {
			return nil, err
		}
		s.Put(l)
	}

	s.SetInitial(nodes[initial])
	if err := s.Finalize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Build is a one-shot shorthand for New().Description(raw).Initial(initial).Bind(bindings...).Build().
func Build(raw any, initial string, bindings ...domain.LeafBinding) (*structure.Structure, error) {
	return New().Description(raw).Initial(initial).Bind(bindings...).Build()
}
