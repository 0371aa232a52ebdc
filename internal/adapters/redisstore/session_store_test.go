package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
	"github.com/jersab/Poject-BizCardHub/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func testProfile(id string) model.User {
	return model.User{
		ID:    id,
		Name:  model.Name{First: "Dana", Last: "Levi"},
		Email: "dana@example.com",
		Phone: "050-1234567",
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	profile := testProfile("user-123")
	session := domainauth.Session{
		ID:      "test-session-1",
		Token:   "tok-abc",
		Profile: &profile,
	}

	err := store.Save(ctx, session)
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.Token, retrieved.Token)
	require.NotNil(t, retrieved.Profile)
	assert.Equal(t, profile.ID, retrieved.Profile.ID)
	assert.Equal(t, profile.Email, retrieved.Profile.Email)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	_, err := store.Get(ctx, "non-existent")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_TokenOnlySession(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	err := store.Save(ctx, domainauth.Session{ID: "test-session-2", Token: "tok-xyz"})
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "test-session-2")
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", retrieved.Token)
	assert.Nil(t, retrieved.Profile)
}

func TestSessionStore_RejectsProfileWithoutToken(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	profile := testProfile("user-1")
	err := store.Save(ctx, domainauth.Session{ID: "test-session-3", Profile: &profile})
	assert.Error(t, err)
}

func TestSessionStore_SetProfile(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "test-session-4", Token: "tok-1"}))

	profile := testProfile("user-9")
	require.NoError(t, store.SetProfile(ctx, "test-session-4", profile))

	retrieved, err := store.Get(ctx, "test-session-4")
	require.NoError(t, err)
	require.NotNil(t, retrieved.Profile)
	assert.Equal(t, "user-9", retrieved.Profile.ID)
	assert.Equal(t, "tok-1", retrieved.Token)
}

func TestSessionStore_SetProfileUnknownSession(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	err := store.SetProfile(ctx, "never-saved", testProfile("user-1"))
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_CorruptProfileKeepsToken(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "test-session-5", Token: "tok-keep"}))

	// Simulate a corrupted profile entry written by an older release.
	require.NoError(t, client.Set(ctx, store.profileKey("test-session-5"), "{not json", time.Minute).Err())

	retrieved, err := store.Get(ctx, "test-session-5")
	assert.ErrorIs(t, err, ports.ErrProfileCorrupt)
	assert.Equal(t, "tok-keep", retrieved.Token)
	assert.Nil(t, retrieved.Profile)

	// The corrupt entry is discarded so subsequent reads succeed.
	retrieved, err = store.Get(ctx, "test-session-5")
	require.NoError(t, err)
	assert.Equal(t, "tok-keep", retrieved.Token)
	assert.Nil(t, retrieved.Profile)
}

func TestSessionStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	profile := testProfile("user-5")
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "test-session-6", Token: "tok-del", Profile: &profile}))
	require.NoError(t, store.Delete(ctx, "test-session-6"))

	_, err := store.Get(ctx, "test-session-6")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_SaveClearsStaleProfile(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	profile := testProfile("user-7")
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "test-session-7", Token: "tok-a", Profile: &profile}))
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "test-session-7", Token: "tok-b"}))

	retrieved, err := store.Get(ctx, "test-session-7")
	require.NoError(t, err)
	assert.Equal(t, "tok-b", retrieved.Token)
	assert.Nil(t, retrieved.Profile)
}
