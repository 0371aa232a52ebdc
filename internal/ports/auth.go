// Package ports defines interfaces (hexagonal ports) for auth and remote
// service access. Implementations live in internal/adapters; orchestration
// in internal/service.
package ports

import (
	"context"
	"errors"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
)

// ErrSessionNotFound is returned when a session id has no persisted record.
var ErrSessionNotFound = errors.New("session not found")

// ErrProfileCorrupt is returned by SessionStore.Get when the persisted
// profile payload could not be decoded. The returned session still carries
// the token; the caller must re-fetch the profile from the users service.
var ErrProfileCorrupt = errors.New("persisted profile corrupt")

// TokenDecoder reads the structured claim set out of an opaque bearer
// credential. Decoding is structural only: no signature or expiry checks
// happen client-side. The users service is the sole authority; a stale or
// forged token surfaces as a failure of the next authenticated call.
type TokenDecoder interface {
	Decode(raw string) (domainauth.Claims, error)
}

// SessionStore persists and retrieves browser sessions.
//
// SetProfile replaces only the stored profile, never the token; Delete
// removes token and profile together. Implementations must uphold the
// invariant that a profile is never persisted without a token.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	SetProfile(ctx context.Context, id string, profile model.User) error
	Delete(ctx context.Context, id string) error
}
