package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
)

func navLabels(session domainauth.Session) []string {
	entries := visibleNavEntries(session)
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Label)
	}
	return labels
}

func TestVisibleNavEntries_Guest(t *testing.T) {
	labels := navLabels(domainauth.Session{})
	assert.Equal(t, []string{"Home", "About", "Sign Up", "Sign In"}, labels)
}

func TestVisibleNavEntries_TokenOnlySession(t *testing.T) {
	// A token-bearing session whose profile has not resolved yet passes the
	// token guard, so token-gated links show while role-gated ones stay hidden.
	labels := navLabels(domainauth.Session{ID: "s1", Token: "tok"})
	assert.Equal(t, []string{"Home", "About", "Favorites"}, labels)
}

func TestVisibleNavEntries_RegularUser(t *testing.T) {
	session := domainauth.Session{ID: "s1", Token: "tok", Profile: &model.User{ID: "u1"}}
	labels := navLabels(session)
	assert.Equal(t, []string{"Home", "About", "Favorites"}, labels)
}

func TestVisibleNavEntries_BusinessUser(t *testing.T) {
	session := domainauth.Session{
		ID: "s1", Token: "tok",
		Profile: &model.User{ID: "b1", IsBusiness: true},
	}
	labels := navLabels(session)
	assert.Equal(t, []string{"Home", "About", "Favorites", "My Cards"}, labels)
}

func TestVisibleNavEntries_Admin(t *testing.T) {
	session := domainauth.Session{
		ID: "s1", Token: "tok",
		Profile: &model.User{ID: "a1", IsAdmin: true},
	}
	labels := navLabels(session)
	assert.Equal(t, []string{"Home", "About", "Favorites", "My Cards", "Sandbox"}, labels)
}

func TestBasePageData_GuestDefaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	data := basePageData(req, PageMeta{Title: "BizCardHub", CurrentPage: PageHome})

	assert.Equal(t, false, data["IsAuthenticated"])
	assert.Equal(t, "guest", data["Role"])
	assert.NotContains(t, data, "User")
}

func TestBasePageData_WithProfile(t *testing.T) {
	session := domainauth.Session{
		ID: "s1", Token: "tok",
		Profile: &model.User{
			ID:         "b1",
			Name:       model.Name{First: "Dana", Last: "Levi"},
			IsBusiness: true,
		},
	}
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(SetSessionInContext(req.Context(), session))

	data := basePageData(req, PageMeta{CurrentPage: PageHome})

	require.Equal(t, true, data["IsAuthenticated"])
	assert.Equal(t, true, data["IsBusiness"])
	assert.Equal(t, false, data["IsAdmin"])
	assert.Equal(t, "Dana Levi", data["UserName"])
	assert.Equal(t, "b1", data["UserID"])
}

func TestTemplateDataBuilder(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	data := NewTemplateData(req, PageMeta{Title: "X"}).
		WithError("boom").
		WithFieldErrors(map[string]string{"email": "Enter a valid email address."}).
		With("Cards", []model.Card{}).
		Build()

	assert.Equal(t, true, data["Error"])
	assert.Equal(t, "boom", data["ErrorMessage"])
	assert.Contains(t, data, "Errors")
	assert.Contains(t, data, "Cards")
}
