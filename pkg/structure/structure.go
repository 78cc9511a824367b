package structure

import (
	"fmt"

	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/registry"
)

// Structure is the arena of menu entries.
type Structure struct {
	registry  *registry.Registry
	entries   []domain.Entry
	initial   domain.Position
	finalized bool
}

// New creates an empty Structure over reg. A nil reg gets a fresh Registry.
func New(reg *registry.Registry) *Structure {
	if reg == nil {
		reg = registry.NewRegistry()
	}
	return &Structure{registry: reg}
}

// Registry returns the registry positions are interned in.
func (s *Structure) Registry() *registry.Registry {
	return s.registry
}

// Put stores e at its position. It returns false, leaving the Structure
// untouched, once the Structure is finalized or when the position does not
// belong to the registry.
func (s *Structure) Put(e domain.Entry) bool {
	if s.finalized || e == nil {
		return false
	}
	pos := e.Position()
	known, err := s.registry.Get(pos.ID)
	if err != nil || known != pos {
		return false
	}
	for len(s.entries) <= int(pos.ID) {
		s.entries = append(s.entries, nil)
	}
	s.entries[pos.ID] = e
	return true
}

// SetInitial sets the starting Node. Like Put it is a no-op after Finalize.
func (s *Structure) SetInitial(p domain.Position) bool {
	if s.finalized || !p.IsNode() {
		return false
	}
	if known, ok := s.registry.Lookup(p.Name); !ok || known != p {
		return false
	}
	s.initial = p
	return true
}

// Finalize freezes the Structure after checking it is complete:
// every interned position has an entry and an initial Node is set.
func (s *Structure) Finalize() error {
	if s.finalized {
		return nil
	}
	positions := s.registry.Positions()
	if len(positions) == 0 {
		return fmt.Errorf("%w: no positions", domain.ErrInvalidStructure)
	}
	for _, p := range positions {
		if int(p.ID) >= len(s.entries) || s.entries[p.ID] == nil {
			return fmt.Errorf("%w: no entry for %q", domain.ErrInvalidStructure, p.Name)
		}
	}
	if s.initial.IsZero() {
		return fmt.Errorf("%w: no initial position", domain.ErrInvalidStructure)
	}
	s.finalized = true
	return nil
}

// Finalized reports whether the Structure is frozen.
func (s *Structure) Finalized() bool {
	return s.finalized
}

// Initial returns the starting Node.
func (s *Structure) Initial() domain.Position {
	return s.initial
}

// Entry returns the entry stored at id.
func (s *Structure) Entry(id domain.PositionID) (domain.Entry, error) {
	if id < 0 || int(id) >= len(s.entries) || s.entries[id] == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrUnknownPosition, id)
	}
	return s.entries[id], nil
}

// EntryByName returns the entry stored under name.
func (s *Structure) EntryByName(name string) (domain.Entry, error) {
	p, ok := s.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPosition, name)
	}
	return s.Entry(p.ID)
}

// Lookup finds a position by name.
func (s *Structure) Lookup(name string) (domain.Position, bool) {
	return s.registry.Lookup(name)
}

// Len returns the number of stored entries.
func (s *Structure) Len() int {
	n := 0
	for _, e := range s.entries {
		if e != nil {
			n++
		}
	}
	return n
}

// Positions returns every stored position in id order.
func (s *Structure) Positions() []domain.Position {
	out := make([]domain.Position, 0, len(s.entries))
	for _, e := range s.entries {
		if e != nil {
			out = append(out, e.Position())
		}
	}
	return out
}

// Nodes returns the Node positions in id order.
func (s *Structure) Nodes() []domain.Position {
	return s.filter(domain.KindNode)
}

// Leaves returns the Leaf positions in id order.
func (s *Structure) Leaves() []domain.Position {
	return s.filter(domain.KindLeaf)
}

func (s *Structure) filter(kind domain.PositionKind) []domain.Position {
	var out []domain.Position
	for _, p := range s.Positions() {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}
