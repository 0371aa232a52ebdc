// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import "github.com/jersab/Poject-BizCardHub/internal/domain/model"

// Role represents an application's authorization tier.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleBusiness Role = "business"
	RoleUser     Role = "user"
	RoleGuest    Role = "guest"
)

// Claims is the structured payload read from a bearer token issued by the
// users service. The client never verifies signature or expiry; it only
// reads fields. Malformed payloads surface as a decode failure.
type Claims struct {
	UserID     string
	IsBusiness bool
	IsAdmin    bool
}

// Session is the server-side record persisted per browser session.
// ID is an opaque session identifier (e.g., random URL-safe string).
// Token is the bearer credential issued by the remote users service.
// Profile is a denormalized copy of the authenticated user's record; it
// may lag behind Token (token set, profile not yet fetched) but must never
// exist without it.
type Session struct {
	ID      string      `json:"id"`
	Token   string      `json:"token"`
	Profile *model.User `json:"profile,omitempty"`
}

// HasToken reports whether the session carries a bearer credential.
func (s Session) HasToken() bool { return s.Token != "" }

// HasProfile reports whether the denormalized profile has been resolved.
func (s Session) HasProfile() bool { return s.Profile != nil }

// IsGuest reports whether the session derives to the guest role.
func (s Session) IsGuest() bool { return DeriveRole(s) == RoleGuest }

// DeriveRole maps session state to exactly one role. It is total and
// deterministic. A token without a resolved profile stays guest: elevated
// access is never assumed before the server confirms the profile.
// Precedence when both flags are set: admin > business.
func DeriveRole(s Session) Role {
	if !s.HasToken() || !s.HasProfile() {
		return RoleGuest
	}
	switch {
	case s.Profile.IsAdmin:
		return RoleAdmin
	case s.Profile.IsBusiness:
		return RoleBusiness
	default:
		return RoleUser
	}
}
