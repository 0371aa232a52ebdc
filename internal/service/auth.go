package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users    ports.UsersGateway
	Sessions ports.SessionStore
	Decoder  ports.TokenDecoder
	Logger   *slog.Logger
}

// AuthService orchestrates login, registration, and session resolution by
// coordinating the users gateway, token decoder, and session persistence.
type AuthService struct {
	users    ports.UsersGateway
	sessions ports.SessionStore
	decoder  ports.TokenDecoder
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		users:    opts.Users,
		sessions: opts.Sessions,
		decoder:  opts.Decoder,
		logger:   logger,
	}
}

// Login exchanges credentials for a bearer token, resolves the caller's
// profile, and persists a new session. When the profile cannot be fetched
// for a transient reason, a token-only session is persisted and the caller
// browses as guest until the profile resolves on a later request.
func (s *AuthService) Login(ctx context.Context, email, password string) (domainauth.Session, error) {
	if email == "" || password == "" {
		return domainauth.Session{}, apperrors.Validation("email and password are required")
	}

	token, err := s.users.Login(ctx, email, password)
	if err != nil {
		return domainauth.Session{}, err
	}

	session := domainauth.Session{
		ID:    generateSessionID(),
		Token: token,
	}

	profile, err := s.fetchProfile(ctx, token)
	switch {
	case err == nil:
		session.Profile = &profile
	case apperrors.IsAuthentication(err):
		// The service rejected its own freshly issued token.
		return domainauth.Session{}, err
	default:
		// Profile stays unresolved; the session is still usable.
		s.logger.Warn("profile fetch after login failed", "error", err)
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", saveErr)
	}

	return session, nil
}

// Register creates an account on the users service. It does not log the
// new user in; the caller is sent to the login screen afterwards.
func (s *AuthService) Register(ctx context.Context, user model.User) (model.User, error) {
	created, err := s.users.Register(ctx, user)
	if err != nil {
		return model.User{}, err
	}
	created.Password = ""
	return created, nil
}

// GetSession resolves the session for a request. A missing or unknown
// session id yields ports.ErrSessionNotFound; callers treat that as guest.
//
// A session whose profile is unresolved (never fetched, or discarded as
// corrupt) is repaired in place: the profile is re-fetched with the stored
// token. If the users service rejects the token, the whole session is
// cleared and the caller is effectively logged out.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (domainauth.Session, error) {
	if sessionID == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, ports.ErrProfileCorrupt) {
		return domainauth.Session{}, err
	}

	if session.HasProfile() || !session.HasToken() {
		return session, nil
	}

	profile, fetchErr := s.fetchProfile(ctx, session.Token)
	if fetchErr != nil {
		if apperrors.IsAuthentication(fetchErr) {
			if delErr := s.sessions.Delete(ctx, sessionID); delErr != nil {
				s.logger.Error("clear session after token rejection failed", "error", delErr)
			}
			return domainauth.Session{}, ports.ErrSessionNotFound
		}
		// Transient failure: keep the token-only session, role stays guest.
		s.logger.Warn("profile re-fetch failed", "error", fetchErr)
		return session, nil
	}

	session.Profile = &profile
	if setErr := s.sessions.SetProfile(ctx, sessionID, profile); setErr != nil {
		s.logger.Error("persist re-fetched profile failed", "error", setErr)
	}
	return session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// fetchProfile decodes the token to learn the caller's user id, then loads
// the profile from the users service.
func (s *AuthService) fetchProfile(ctx context.Context, token string) (model.User, error) {
	claims, err := s.decoder.Decode(token)
	if err != nil {
		return model.User{}, err
	}
	return s.users.GetByID(ctx, token, claims.UserID)
}

func generateSessionID() string {
	return uuid.NewString()
}
