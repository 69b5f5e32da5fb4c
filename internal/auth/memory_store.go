package auth

import (
	"context"
	"sync"
	"time"
)

// MemorySessionStore is the in-process SessionStore used in tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
}

type memorySession struct {
	sess      Session
	expiresAt time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemorySessionStore{ttl: ttl, sessions: make(map[string]memorySession)}
}

func (s *MemorySessionStore) Create(_ context.Context, sess Session) (string, error) {
	token := NewToken()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{sess: sess, expiresAt: time.Now().Add(s.ttl)}
	return token, nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok || time.Now().After(e.expiresAt) {
		delete(s.sessions, token)
		return Session{}, ErrNoSession
	}
	return e.sess, nil
}

func (s *MemorySessionStore) Save(_ context.Context, token string, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{sess: sess, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
