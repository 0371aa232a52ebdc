package service

import (
	"context"
	"fmt"
	"log/slog"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users    ports.UsersGateway
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// UserService covers profile self-service and the admin user management
// operations.
type UserService struct {
	users    ports.UsersGateway
	sessions ports.SessionStore
	logger   *slog.Logger
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		users:    opts.Users,
		sessions: opts.Sessions,
		logger:   logger,
	}
}

// UpdateProfile submits a partial profile update for the session's own user
// and re-persists the refreshed profile into the session record so the next
// render sees it.
func (s *UserService) UpdateProfile(ctx context.Context, sess domainauth.Session, upd model.UserUpdate) (model.User, error) {
	if !sess.HasToken() || !sess.HasProfile() {
		return model.User{}, apperrors.Authentication("you must be logged in to edit your profile")
	}

	updated, err := s.users.Update(ctx, sess.Token, sess.Profile.ID, upd)
	if err != nil {
		return model.User{}, err
	}

	if setErr := s.sessions.SetProfile(ctx, sess.ID, updated); setErr != nil {
		// The remote update succeeded; a stale session profile heals on the
		// next full resolution.
		s.logger.Error("persist updated profile failed", "error", setErr)
	}

	return updated, nil
}

// ListUsers returns all users. Admin only; the remote service enforces the
// privilege, we surface its answer.
func (s *UserService) ListUsers(ctx context.Context, sess domainauth.Session) ([]model.User, error) {
	if !sess.HasToken() {
		return nil, apperrors.Authentication("login required")
	}
	return s.users.List(ctx, sess.Token)
}

// ToggleBusiness flips a user's business flag from the admin sandbox.
func (s *UserService) ToggleBusiness(ctx context.Context, sess domainauth.Session, userID string) (model.User, error) {
	if !sess.HasToken() {
		return model.User{}, apperrors.Authentication("login required")
	}
	if userID == "" {
		return model.User{}, apperrors.Validation("user id is required")
	}

	user, err := s.users.ToggleBusiness(ctx, sess.Token, userID)
	if err != nil {
		return model.User{}, err
	}

	// When an admin toggles their own account the session profile must
	// follow, otherwise role derivation works from stale flags.
	if sess.HasProfile() && sess.Profile.ID == userID {
		if setErr := s.sessions.SetProfile(ctx, sess.ID, user); setErr != nil {
			s.logger.Error("persist toggled profile failed", "error", setErr)
		}
	}

	return user, nil
}

// DeleteUser removes a user from the admin sandbox.
func (s *UserService) DeleteUser(ctx context.Context, sess domainauth.Session, userID string) error {
	if !sess.HasToken() {
		return apperrors.Authentication("login required")
	}
	if userID == "" {
		return apperrors.Validation("user id is required")
	}
	if sess.HasProfile() && sess.Profile.ID == userID {
		return apperrors.Validation("you cannot delete your own account from the sandbox")
	}

	if err := s.users.Delete(ctx, sess.Token, userID); err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}
