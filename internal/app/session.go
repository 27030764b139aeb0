package app

import (
	"sync"

	"aicoach/internal/database"
)

// Session tracks the authenticated user for the terminal session. Guarded
// by a mutex because AI completions land from a worker goroutine.
type Session struct {
	mu   sync.RWMutex
	user *database.User
}

// NewSession creates an anonymous session.
func NewSession() *Session {
	return &Session{}
}

// SetUser marks the session authenticated.
func (s *Session) SetUser(u *database.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// User returns the authenticated user, or nil while anonymous.
func (s *Session) User() *database.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Clear returns the session to anonymous.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
