package bcardapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
	"github.com/jersab/Poject-BizCardHub/internal/testutil"
)

func TestUsersClient_LoginReturnsTrimmedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "dana@example.com", creds["email"])

		w.Write([]byte("\"tok-12345\"\n"))
	}))
	defer srv.Close()

	c := NewUsersClient(srv.URL, srv.Client())
	token, err := c.Login(context.Background(), "dana@example.com", "Abc!123Abc")
	require.NoError(t, err)
	assert.Equal(t, "tok-12345", token)
}

func TestUsersClient_LoginBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid email or password", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewUsersClient(srv.URL, srv.Client())
	_, err := c.Login(context.Background(), "dana@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	// The remote message must pass through verbatim.
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestUsersClient_AttachesAuthHeader(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("x-auth-token")
		json.NewEncoder(w).Encode(testutil.NewUser().WithID("user-5").Build())
	}))
	defer srv.Close()

	c := NewUsersClient(srv.URL, srv.Client())
	user, err := c.GetByID(context.Background(), "tok-abc", "user-5")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", gotToken)
	assert.Equal(t, "user-5", user.ID)
}

func TestUsersClient_UnauthorizedMapsToAuthentication(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewUsersClient(srv.URL, srv.Client())
	_, err := c.GetByID(context.Background(), "stale", "user-5")
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestUsersClient_ForbiddenMapsToAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Access denied", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewUsersClient(srv.URL, srv.Client())
	_, err := c.List(context.Background(), "tok-user")
	assert.True(t, apperrors.IsAuthorization(err))
}

func TestCardsClient_ListNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards", r.URL.Path)
		assert.Empty(t, r.Header.Get("x-auth-token"))
		json.NewEncoder(w).Encode(testutil.Cards(3))
	}))
	defer srv.Close()

	c := NewCardsClient(srv.URL, srv.Client())
	cards, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cards, 3)
}

func TestCardsClient_MyCardsPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards/my-cards", r.URL.Path)
		assert.Equal(t, "tok-biz", r.Header.Get("x-auth-token"))
		json.NewEncoder(w).Encode([]model.Card{})
	}))
	defer srv.Close()

	c := NewCardsClient(srv.URL, srv.Client())
	cards, err := c.MyCards(context.Background(), "tok-biz")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestCardsClient_ToggleLike(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		json.NewEncoder(w).Encode(testutil.NewCard().LikedBy("user-1").Build())
	}))
	defer srv.Close()

	c := NewCardsClient(srv.URL, srv.Client())
	require.NoError(t, c.ToggleLike(context.Background(), "tok-user", "card-1"))
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/cards/card-1", path)
}

func TestCardsClient_GetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "card not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewCardsClient(srv.URL, srv.Client())
	_, err := c.GetByID(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCardsClient_ListLargeCatalog(t *testing.T) {
	// A full catalog easily exceeds the error-body cap; successes must be
	// read in full.
	catalog := make([]model.Card, 0, 300)
	for i := 0; i < 300; i++ {
		catalog = append(catalog, testutil.NewCard().
			WithID(fmt.Sprintf("card-%d", i)).
			WithDescription(strings.Repeat("services and more ", 25)).
			Build())
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(catalog)
	}))
	defer srv.Close()

	c := NewCardsClient(srv.URL, srv.Client())
	cards, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cards, 300)
	assert.Equal(t, "card-299", cards[299].ID)
}

func TestClient_TransportErrorMapsToNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Connection refused from here on

	c := NewCardsClient(srv.URL, nil)
	_, err := c.List(context.Background())
	assert.True(t, apperrors.IsNetwork(err))
}

func TestClient_MalformedJSONMapsToDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := NewCardsClient(srv.URL, srv.Client())
	_, err := c.List(context.Background())
	assert.True(t, apperrors.IsDecode(err))
}
