package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
	"github.com/jersab/Poject-BizCardHub/internal/testutil"
)

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	profile := testutil.NewUser().WithID("user-123").Build()
	require.NoError(t, store.Save(ctx, domainauth.Session{
		ID:      "sess-1",
		Token:   "tok-abc",
		Profile: &profile,
	}))

	retrieved, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", retrieved.Token)
	require.NotNil(t, retrieved.Profile)
	assert.Equal(t, "user-123", retrieved.Profile.ID)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_GetReturnsCopy(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	profile := testutil.NewUser().WithID("user-1").Build()
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "sess-2", Token: "tok", Profile: &profile}))

	first, err := store.Get(ctx, "sess-2")
	require.NoError(t, err)
	first.Profile.Email = "mutated@example.com"

	second, err := store.Get(ctx, "sess-2")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated@example.com", second.Profile.Email)
}

func TestSessionStore_SetProfile(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "sess-3", Token: "tok"}))

	profile := testutil.NewUser().WithID("user-9").AsBusiness().Build()
	require.NoError(t, store.SetProfile(ctx, "sess-3", profile))

	retrieved, err := store.Get(ctx, "sess-3")
	require.NoError(t, err)
	require.NotNil(t, retrieved.Profile)
	assert.True(t, retrieved.Profile.IsBusiness)
}

func TestSessionStore_SetProfileUnknownSession(t *testing.T) {
	store := NewSessionStore()

	err := store.SetProfile(context.Background(), "missing", testutil.NewUser().Build())
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "sess-4", Token: "tok"}))
	require.NoError(t, store.Delete(ctx, "sess-4"))

	_, err := store.Get(ctx, "sess-4")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}
