package agent

import (
	"sync"
	"time"
)

// SessionStore holds one Session per session identifier.
// The store lock only guards the map; each session carries its own lock so
// concurrent messages for different sessions never block one another.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for the identifier, creating it on first use.
// userID is only applied at creation; it is immutable afterwards.
func (s *SessionStore) GetOrCreate(sessionID, userID string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}

	now := time.Now().UTC()
	sess = &Session{
		SessionID: sessionID,
		UserID:    userID,
		Phase:     PhaseGreeting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[sessionID] = sess
	return sess
}

// Get returns the session if it exists.
func (s *SessionStore) Get(sessionID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	return sess, ok
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
