package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
	"github.com/jersab/Poject-BizCardHub/internal/mocks"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
	"github.com/jersab/Poject-BizCardHub/internal/testutil"
)

const testToken = "tok-jwt-abc"

func newAuthService(users *mocks.MockUsersGateway, sessions *mocks.MockSessionStore, decoder *mocks.MockTokenDecoder) *AuthService {
	return NewAuthService(AuthServiceOptions{
		Users:    users,
		Sessions: sessions,
		Decoder:  decoder,
	})
}

func TestAuthService_Login_ResolvesProfileAndSavesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	users := mocks.NewMockUsersGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	decoder := mocks.NewMockTokenDecoder(ctrl)

	profile := testutil.NewUser().WithID("user-1").AsBusiness().Build()

	users.EXPECT().Login(ctx, "dana@example.com", "Abc!123Abc").Return(testToken, nil)
	decoder.EXPECT().Decode(testToken).Return(domainauth.Claims{UserID: "user-1", IsBusiness: true}, nil)
	users.EXPECT().GetByID(ctx, testToken, "user-1").Return(profile, nil)

	var saved domainauth.Session
	sessions.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sess domainauth.Session) error {
			saved = sess
			return nil
		})

	svc := newAuthService(users, sessions, decoder)
	sess, err := svc.Login(ctx, "dana@example.com", "Abc!123Abc")
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, testToken, sess.Token)
	require.NotNil(t, sess.Profile)
	assert.Equal(t, "user-1", sess.Profile.ID)
	assert.Equal(t, sess.ID, saved.ID)
	assert.Equal(t, domainauth.RoleBusiness, domainauth.DeriveRole(sess))
}

func TestAuthService_Login_BadCredentialsSurfaceVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	users := mocks.NewMockUsersGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	decoder := mocks.NewMockTokenDecoder(ctrl)

	users.EXPECT().Login(ctx, "dana@example.com", "wrong").
		Return("", apperrors.Validation("Invalid email or password"))

	svc := newAuthService(users, sessions, decoder)
	_, err := svc.Login(ctx, "dana@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestAuthService_Login_ProfileFetchTransientFailureKeepsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	users := mocks.NewMockUsersGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	decoder := mocks.NewMockTokenDecoder(ctrl)

	users.EXPECT().Login(ctx, "dana@example.com", "Abc!123Abc").Return(testToken, nil)
	decoder.EXPECT().Decode(testToken).Return(domainauth.Claims{UserID: "user-1"}, nil)
	users.EXPECT().GetByID(ctx, testToken, "user-1").
		Return(model.User{}, apperrors.Network("users service unreachable"))
	sessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	svc := newAuthService(users, sessions, decoder)
	sess, err := svc.Login(ctx, "dana@example.com", "Abc!123Abc")
	require.NoError(t, err)

	assert.Equal(t, testToken, sess.Token)
	assert.Nil(t, sess.Profile)
	// Profile unresolved means the caller browses as guest for now.
	assert.Equal(t, domainauth.RoleGuest, domainauth.DeriveRole(sess))
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newAuthService(mocks.NewMockUsersGateway(ctrl), mocks.NewMockSessionStore(ctrl), mocks.NewMockTokenDecoder(ctrl))
	_, err := svc.Login(context.Background(), "", "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_GetSession_ReturnsStoredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sessions := mocks.NewMockSessionStore(ctrl)

	profile := testutil.NewUser().WithID("user-1").Build()
	stored := domainauth.Session{ID: "sess-1", Token: testToken, Profile: &profile}
	sessions.EXPECT().Get(ctx, "sess-1").Return(stored, nil)

	svc := newAuthService(mocks.NewMockUsersGateway(ctrl), sessions, mocks.NewMockTokenDecoder(ctrl))
	sess, err := svc.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, stored, sess)
}

func TestAuthService_GetSession_EmptyIDIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newAuthService(mocks.NewMockUsersGateway(ctrl), mocks.NewMockSessionStore(ctrl), mocks.NewMockTokenDecoder(ctrl))
	_, err := svc.GetSession(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestAuthService_GetSession_RepairsCorruptProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	users := mocks.NewMockUsersGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	decoder := mocks.NewMockTokenDecoder(ctrl)

	profile := testutil.NewUser().WithID("user-1").Build()

	// Store kept the token but had to discard the profile payload.
	sessions.EXPECT().Get(ctx, "sess-1").
		Return(domainauth.Session{ID: "sess-1", Token: testToken}, ports.ErrProfileCorrupt)
	decoder.EXPECT().Decode(testToken).Return(domainauth.Claims{UserID: "user-1"}, nil)
	users.EXPECT().GetByID(ctx, testToken, "user-1").Return(profile, nil)
	sessions.EXPECT().SetProfile(ctx, "sess-1", profile).Return(nil)

	svc := newAuthService(users, sessions, decoder)
	sess, err := svc.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, sess.Profile)
	assert.Equal(t, "user-1", sess.Profile.ID)
}

func TestAuthService_GetSession_TokenRejectionClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	users := mocks.NewMockUsersGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	decoder := mocks.NewMockTokenDecoder(ctrl)

	sessions.EXPECT().Get(ctx, "sess-1").
		Return(domainauth.Session{ID: "sess-1", Token: testToken}, nil)
	decoder.EXPECT().Decode(testToken).Return(domainauth.Claims{UserID: "user-1"}, nil)
	users.EXPECT().GetByID(ctx, testToken, "user-1").
		Return(model.User{}, apperrors.Authentication("Invalid token"))
	sessions.EXPECT().Delete(ctx, "sess-1").Return(nil)

	svc := newAuthService(users, sessions, decoder)
	_, err := svc.GetSession(ctx, "sess-1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestAuthService_GetSession_TransientFetchFailureStaysGuest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	users := mocks.NewMockUsersGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	decoder := mocks.NewMockTokenDecoder(ctrl)

	sessions.EXPECT().Get(ctx, "sess-1").
		Return(domainauth.Session{ID: "sess-1", Token: testToken}, nil)
	decoder.EXPECT().Decode(testToken).Return(domainauth.Claims{UserID: "user-1"}, nil)
	users.EXPECT().GetByID(ctx, testToken, "user-1").
		Return(model.User{}, apperrors.Network("timeout"))

	svc := newAuthService(users, sessions, decoder)
	sess, err := svc.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, testToken, sess.Token)
	assert.Equal(t, domainauth.RoleGuest, domainauth.DeriveRole(sess))
}

func TestAuthService_Register_StripsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	users := mocks.NewMockUsersGateway(ctrl)

	input := testutil.NewUser().WithID("").Build()
	input.Password = "Abc!123Abc"
	created := testutil.NewUser().WithID("user-7").Build()
	created.Password = "hashed"

	users.EXPECT().Register(ctx, input).Return(created, nil)

	svc := newAuthService(users, mocks.NewMockSessionStore(ctrl), mocks.NewMockTokenDecoder(ctrl))
	got, err := svc.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "user-7", got.ID)
	assert.Empty(t, got.Password)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sessions := mocks.NewMockSessionStore(ctrl)
	sessions.EXPECT().Delete(ctx, "sess-1").Return(nil)

	svc := newAuthService(mocks.NewMockUsersGateway(ctrl), sessions, mocks.NewMockTokenDecoder(ctrl))
	require.NoError(t, svc.Logout(ctx, "sess-1"))
	require.NoError(t, svc.Logout(ctx, "")) // no-op
}
