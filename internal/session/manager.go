package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HydrateFunc runs once when a session is restored from the store, before
// the first operation sees it.
type HydrateFunc func(ctx context.Context, s *State)

type entry struct {
	mu       sync.Mutex
	state    *State
	lastUsed time.Time
}

// Manager owns the live sessions. Mutations of one session run one at a
// time, each on a copy that is committed only when it succeeds.
type Manager struct {
	store   Store
	hydrate HydrateFunc
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry

	logger zerolog.Logger
}

// NewManager creates a session manager. hydrate may be nil.
func NewManager(store Store, hydrate HydrateFunc, logger zerolog.Logger) *Manager {
	return &Manager{
		store:    store,
		hydrate:  hydrate,
		now:      time.Now,
		sessions: make(map[string]*entry),
		logger:   logger.With().Str("component", "session").Logger(),
	}
}

// Create starts a new empty session.
func (m *Manager) Create(ctx context.Context) (*State, error) {
	s := NewState(uuid.NewString())
	s.UpdatedAt = m.now()

	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	m.mu.Lock()
	m.sessions[s.ID] = &entry{state: s, lastUsed: s.UpdatedAt}
	m.mu.Unlock()

	m.logger.Debug().Str("session_id", s.ID).Msg("session created")
	return s.Clone(), nil
}

// View returns a snapshot of the session.
func (m *Manager) View(ctx context.Context, id string) (*State, error) {
	e, err := m.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()

	return e.state.Clone(), nil
}

// Update applies fn to a copy of the session. The copy replaces the session
// only when fn returns nil, and is then mirrored to the store. Mirror
// failures are logged and do not fail the update.
func (m *Manager) Update(ctx context.Context, id string, fn func(s *State) error) (*State, error) {
	e, err := m.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()

	working := e.state.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	working.UpdatedAt = m.now()
	e.state = working

	if err := m.store.Save(ctx, working); err != nil {
		m.logger.Error().Err(err).Str("session_id", id).Msg("failed to mirror session")
	}

	return working.Clone(), nil
}

// Delete forgets the session and removes its stored copy.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	return m.store.Delete(ctx, id)
}

// Sweep drops sessions idle for longer than maxIdle from memory. Their
// stored copy stays and is hydrated again on next use.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, e := range m.sessions {
		if !e.mu.TryLock() {
			continue
		}
		if e.lastUsed.Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
		e.mu.Unlock()
	}
	return evicted
}

// lock returns the locked entry for id, hydrating it from the store on first
// use.
func (m *Manager) lock(ctx context.Context, id string) (*entry, error) {
	if id == "" {
		return nil, model.ErrSessionNotFound
	}

	var e *entry
	for {
		m.mu.Lock()
		current, ok := m.sessions[id]
		if !ok {
			current = &entry{}
			m.sessions[id] = current
		}
		m.mu.Unlock()

		current.mu.Lock()
		if m.live(id, current) {
			e = current
			break
		}
		// Swept while we waited.
		current.mu.Unlock()
	}

	e.lastUsed = m.now()
	if e.state != nil {
		return e, nil
	}

	s, err := m.store.Load(ctx, id)
	if err != nil {
		e.mu.Unlock()
		m.forget(id, e)
		if errors.Is(err, ErrNotFound) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if m.hydrate != nil {
		m.hydrate(ctx, s)
	}
	e.state = s

	m.logger.Debug().Str("session_id", id).Bool("signed_in", s.SignedIn()).Msg("session hydrated")
	return e, nil
}

func (m *Manager) live(id string, e *entry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id] == e
}

func (m *Manager) forget(id string, e *entry) {
	m.mu.Lock()
	if m.sessions[id] == e {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
}
