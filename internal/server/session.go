// Package server exposes 2048 sessions over HTTP/JSON and pushes state
// changes to browsers over WebSocket.
package server

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrCooldown        = errors.New("move cooldown active")
	ErrTooManySessions = errors.New("too many sessions")
)

// ManagerOptions configures new sessions.
type ManagerOptions struct {
	FourProbability float64
	InitialTiles    int
	Cooldown        time.Duration
	MaxSessions     int // 0 means unlimited

	// Now is the clock used for cooldowns. Nil uses time.Now.
	Now func() time.Time
}

// Session is one game driven by network requests.
type Session struct {
	ID        string
	CreatedAt time.Time
	Seed      int64

	mu       sync.Mutex
	engine   *t2048.Engine
	cooldown *t2048.Cooldown
	recorded bool // final result already handed to the store
}

// State returns the current game state.
func (s *Session) State() t2048.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.State()
}

// Move applies dir unless the cooldown from the previous accepted move is
// still running. The cooldown is consumed even when the board does not
// change.
func (s *Session) Move(dir t2048.Direction) (t2048.MoveResult, t2048.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cooldown.TryAcquire() {
		return t2048.MoveResult{}, s.engine.State(), fmt.Errorf("%w: retry in %s", ErrCooldown, s.cooldown.Remaining())
	}
	res := s.engine.Move(dir)
	return res, s.engine.State(), nil
}

// RetryAfter reports how long the cooldown stays active.
func (s *Session) RetryAfter() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cooldown.Remaining()
}

// Reset starts a new game in the same session.
func (s *Session) Reset() t2048.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reset()
	s.recorded = false
	return s.engine.State()
}

// MarkRecorded returns true the first time it is called after the game ends,
// so each finished game is stored once.
func (s *Session) MarkRecorded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recorded || !s.engine.GameOver() {
		return false
	}
	s.recorded = true
	return true
}

// Manager handles session lifecycle.
type Manager struct {
	opts     ManagerOptions
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewManager creates a session manager.
func NewManager(opts ManagerOptions) *Manager {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session. A zero seed picks one from the clock.
func (m *Manager) Create(seed int64) (*Session, error) {
	if seed == 0 {
		seed = m.opts.Now().UnixNano()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.opts.MaxSessions > 0 && len(m.sessions) >= m.opts.MaxSessions {
		return nil, ErrTooManySessions
	}

	id := generateSessionID()
	for m.sessions[id] != nil {
		id = generateSessionID()
	}

	s := &Session{
		ID:        id,
		CreatedAt: m.opts.Now(),
		Seed:      seed,
		engine: t2048.NewEngine(t2048.Options{
			Rand:            mrand.New(mrand.NewSource(seed)),
			FourProbability: m.opts.FourProbability,
			InitialTiles:    m.opts.InitialTiles,
		}),
		cooldown: t2048.NewCooldown(m.opts.Cooldown, m.opts.Now),
	}
	m.sessions[id] = s
	return s, nil
}

// Get retrieves a session by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// List returns all session IDs in sorted order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// generateSessionID creates a random session ID.
func generateSessionID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("s%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
