package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hu-zza/Clim/pkg/domain"
)

// Registry interns position names.
// A name is interned once, with one kind, and keeps its id for the registry's lifetime.
type Registry struct {
	mu        sync.RWMutex
	byName    map[string]domain.Position
	positions []domain.Position
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]domain.Position),
	}
}

// Intern returns the position registered under name, creating it with kind if needed.
// Interning an existing name with a different kind is an error.
func (r *Registry) Intern(name string, kind domain.PositionKind) (domain.Position, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Position{}, fmt.Errorf("%w: blank position name", domain.ErrInvalidStructure)
	}
	if kind != domain.KindNode && kind != domain.KindLeaf {
		return domain.Position{}, fmt.Errorf("%w: invalid kind for %q", domain.ErrInvalidStructure, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.byName[name]; ok {
		if p.Kind != kind {
			return domain.Position{}, fmt.Errorf("%w: %q is already a %s", domain.ErrInvalidStructure, name, p.Kind)
		}
		return p, nil
	}

	p := domain.Position{
		ID:   domain.PositionID(len(r.positions)),
		Name: name,
		Kind: kind,
	}
	r.byName[name] = p
	r.positions = append(r.positions, p)
	return p, nil
}

// Lookup finds a position by name.
func (r *Registry) Lookup(name string) (domain.Position, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[name]
	return p, ok
}

// Get finds a position by id.
func (r *Registry) Get(id domain.PositionID) (domain.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || int(id) >= len(r.positions) {
		return domain.Position{}, fmt.Errorf("%w: id %d", domain.ErrUnknownPosition, id)
	}
	return r.positions[id], nil
}

// Len returns the number of interned positions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.positions)
}

// Positions returns every position in id order.
func (r *Registry) Positions() []domain.Position {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Position(nil), r.positions...)
}
