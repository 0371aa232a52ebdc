// Package memstore provides an in-memory session store for development mode
// and tests that do not need Redis.
package memstore

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
)

// SessionStore keeps sessions in a process-local map. Sessions do not
// survive a restart, which is acceptable in development mode.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Profile != nil && sess.Token == "" {
		return errors.New("profile without token violates session invariant")
	}

	if sess.Profile != nil {
		profile := *sess.Profile
		sess.Profile = &profile
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	if sess.Profile != nil {
		profile := *sess.Profile
		sess.Profile = &profile
	}
	return sess, nil
}

func (s *SessionStore) SetProfile(_ context.Context, id string, profile model.User) error {
	if id == "" {
		return ports.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ports.ErrSessionNotFound
	}
	sess.Profile = &profile
	s.sessions[id] = sess
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
