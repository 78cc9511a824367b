package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	clim "github.com/hu-zza/Clim"
	"github.com/hu-zza/Clim/internal/logging"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

// Factory creates the Menu of a new session.
type Factory func() (*clim.Menu, error)

// Info describes a live session.
type Info struct {
	ID       string    `json:"id"`
	Created  time.Time `json:"created"`
	LastUsed time.Time `json:"last_used"`
}

type entry struct {
	info Info
	menu *clim.Menu
}

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager owns the menus of all sessions.
// It uses reference counting to garbage collect unused locks.
type Manager struct {
	factory Factory

	mu       sync.Mutex            // Guards sessions and locks
	sessions map[string]*entry     // Live sessions
	locks    map[string]*lockEntry // Active per-session locks

	maxSessions int
	newID       func() string
	now         func() time.Time
	logger      *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithMaxSessions limits the number of live sessions. Zero means no limit.
func WithMaxSessions(n int) Option {
	return func(m *Manager) {
		m.maxSessions = n
	}
}

// WithIDGenerator replaces the random UUID session ids.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		m.newID = fn
	}
}

// NewManager creates a Manager that builds session menus with factory.
func NewManager(factory Factory, opts ...Option) *Manager {
	m := &Manager{
		factory:  factory,
		sessions: make(map[string]*entry),
		locks:    make(map[string]*lockEntry),
		newID:    uuid.NewString,
		now:      time.Now,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller must Lock entry.mu, and call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.locks[sessionID]
	if !exists {
		e = &lockEntry{}
		m.locks[sessionID] = e
	}
	e.refs++
	return e
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.locks[sessionID]
	if !exists {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// Create starts a new session at the menu's initial position and returns its id.
func (m *Manager) Create(ctx context.Context) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}
	menu, err := m.factory()
	if err != nil {
		return Info{}, fmt.Errorf("failed to create session menu: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		return Info{}, fmt.Errorf("%w: limit is %d", ErrTooManySessions, m.maxSessions)
	}
	id := m.newID()
	if _, taken := m.sessions[id]; taken {
		return Info{}, fmt.Errorf("session id %q already in use", id)
	}

	now := m.now()
	info := Info{ID: id, Created: now, LastUsed: now}
	m.sessions[id] = &entry{info: info, menu: menu}
	m.logger.Debug("session created", "session_id", id)
	return info, nil
}

// WithSession runs fn with exclusive access to the session's menu.
func (m *Manager) WithSession(ctx context.Context, sessionID string, fn func(context.Context, *clim.Menu) error) error {
	return m.withLock(ctx, sessionID, func(ctx context.Context) error {
		m.mu.Lock()
		e, ok := m.sessions[sessionID]
		if ok {
			e.info.LastUsed = m.now()
		}
		m.mu.Unlock()

		if !ok {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return fn(ctx, e.menu)
	})
}

// Info returns the metadata of a session.
func (m *Manager) Info(sessionID string) (Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[sessionID]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return e.info, nil
}

// Delete ends a session. It waits for a running operation on the session.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.withLock(ctx, sessionID, func(ctx context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		if _, ok := m.sessions[sessionID]; !ok {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		delete(m.sessions, sessionID)
		m.logger.Debug("session deleted", "session_id", sessionID)
		return nil
	})
}

// List returns the ids of live sessions in lexical order.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Expire deletes sessions unused for longer than idle and returns how many were removed.
func (m *Manager) Expire(ctx context.Context, idle time.Duration) int {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	var stale []string
	for id, e := range m.sessions {
		if e.info.LastUsed.Before(cutoff) {
			stale = append(stale, id)
		}
	}
	m.mu.Unlock()

	removed := 0
	for _, id := range stale {
		if err := m.Delete(ctx, id); err == nil {
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("expired idle sessions", "count", removed)
	}
	return removed
}

func (m *Manager) withLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	l := m.acquire(sessionID)
	l.mu.Lock()
	defer func() {
		l.mu.Unlock()
		m.release(sessionID)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
