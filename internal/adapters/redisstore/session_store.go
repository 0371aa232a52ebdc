// Package redisstore provides the Redis-backed session store for production use.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
)

const defaultTTL = 4 * time.Hour

// SessionStore persists sessions as a token/profile key pair per session id.
// Keeping the two entries separate lets a corrupted profile payload be
// discarded without losing the still-valid token.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a Redis-based session store with the default TTL.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return NewSessionStoreWithTTL(client, defaultTTL)
}

// NewSessionStoreWithTTL creates a Redis session store with a custom session TTL.
func NewSessionStoreWithTTL(client redis.UniversalClient, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &SessionStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

func (s *SessionStore) tokenKey(id string) string   { return s.prefix + id + ":token" }
func (s *SessionStore) profileKey(id string) string { return s.prefix + id + ":profile" }

// Save persists the whole session record. A profile without a token is
// rejected to uphold the session invariant.
func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Profile != nil && sess.Token == "" {
		return errors.New("profile without token violates session invariant")
	}

	if err := s.client.Set(ctx, s.tokenKey(sess.ID), sess.Token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}

	if sess.Profile == nil {
		// Save of a profile-less session clears any stale profile entry.
		if err := s.client.Del(ctx, s.profileKey(sess.ID)).Err(); err != nil {
			return fmt.Errorf("redis del profile: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(sess.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.client.Set(ctx, s.profileKey(sess.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set profile: %w", err)
	}
	return nil
}

// Get reconstructs the session from the persisted pair. When the profile
// payload does not parse, the profile entry is discarded (not the token)
// and ErrProfileCorrupt is returned with the token-only session.
func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	token, err := s.client.Get(ctx, s.tokenKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, ports.ErrSessionNotFound
		}
		return domainauth.Session{}, fmt.Errorf("redis get token: %w", err)
	}

	sess := domainauth.Session{ID: id, Token: token}

	data, err := s.client.Get(ctx, s.profileKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return sess, nil // token present, profile not yet fetched
		}
		return domainauth.Session{}, fmt.Errorf("redis get profile: %w", err)
	}

	var profile model.User
	if unmarshalErr := json.Unmarshal([]byte(data), &profile); unmarshalErr != nil {
		if delErr := s.client.Del(ctx, s.profileKey(id)).Err(); delErr != nil {
			return domainauth.Session{}, fmt.Errorf("discard corrupt profile: %w", delErr)
		}
		return sess, ports.ErrProfileCorrupt
	}

	sess.Profile = &profile
	return sess, nil
}

// SetProfile replaces only the stored profile. The token entry must already
// exist; writing a profile for an unknown session violates the invariant.
func (s *SessionStore) SetProfile(ctx context.Context, id string, profile model.User) error {
	if id == "" {
		return ports.ErrSessionNotFound
	}

	exists, err := s.client.Exists(ctx, s.tokenKey(id)).Result()
	if err != nil {
		return fmt.Errorf("redis exists: %w", err)
	}
	if exists == 0 {
		return ports.ErrSessionNotFound
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.client.Set(ctx, s.profileKey(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set profile: %w", err)
	}
	return nil
}

// Delete removes token and profile together.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}
	return s.client.Del(ctx, s.tokenKey(id), s.profileKey(id)).Err()
}
