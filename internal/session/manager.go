package session

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned for an unknown session id.
	ErrNotFound = errors.New("session: not found")
	// ErrLimit is returned by Create when the manager is full.
	ErrLimit = errors.New("session: limit reached")
	// ErrClosed is returned by Create after Close.
	ErrClosed = errors.New("session: manager closed")
)

// Builder creates a session for a variant. The id is assigned by the manager.
type Builder func(id, variant string) (*Session, error)

type entry struct {
	session *Session
	cancel  context.CancelFunc
}

// Manager keeps running sessions keyed by id. Each session ticks in its own
// goroutine until it is deleted or the manager is closed.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]entry
	build    Builder
	limit    int
	closed   bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger *log.Logger
}

// NewManager creates a manager. limit <= 0 means unlimited.
func NewManager(build Builder, limit int, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		sessions: make(map[string]entry),
		build:    build,
		limit:    limit,
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
	}
}

// Create builds a session for variant and starts ticking it.
func (m *Manager) Create(variant string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}
	if m.limit > 0 && len(m.sessions) >= m.limit {
		return nil, ErrLimit
	}

	id := uuid.NewString()
	s, err := m.build(id, variant)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.sessions[id] = entry{session: s, cancel: cancel}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		_ = s.Run(ctx, nil)
	}()

	m.logger.Info("session created", "id", id, "variant", s.Variant())
	return s, nil
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e.session, nil
}

// Delete stops and removes a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	e.cancel()
	m.logger.Info("session deleted", "id", id)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops every session and waits for their loops to exit.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	m.sessions = make(map[string]entry)
	m.mu.Unlock()

	m.cancel()
	m.wg.Wait()
}
