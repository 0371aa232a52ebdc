package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
)

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginSubmit_Success_SetsCookieAndRedirects(t *testing.T) {
	var gotEmail, gotPassword string
	svc := &mockAuthServiceForMiddleware{
		loginFunc: func(_ context.Context, email, password string) (domainauth.Session, error) {
			gotEmail, gotPassword = email, password
			return domainauth.Session{ID: "sess-42", Token: "tok"}, nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := postForm("/login", url.Values{
		"email":        {"dana@example.com"},
		"password":     {"hunter2!"},
		"redirect_uri": {"/favorites"},
	})
	w := httptest.NewRecorder()
	h.LoginSubmit(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/favorites", w.Header().Get("Location"))
	assert.Equal(t, "dana@example.com", gotEmail)
	assert.Equal(t, "hunter2!", gotPassword)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Equal(t, "sess-42", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginSubmit_HTMX_UsesHxRedirect(t *testing.T) {
	svc := &mockAuthServiceForMiddleware{
		loginFunc: func(_ context.Context, _, _ string) (domainauth.Session, error) {
			return domainauth.Session{ID: "sess-42", Token: "tok"}, nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := postForm("/login", url.Values{
		"email":    {"dana@example.com"},
		"password": {"hunter2!"},
	})
	req.Header.Set("Hx-Request", "true")
	w := httptest.NewRecorder()
	h.LoginSubmit(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "/", w.Header().Get("Hx-Redirect"))
}

func TestLoginSubmit_RejectsExternalRedirect(t *testing.T) {
	svc := &mockAuthServiceForMiddleware{
		loginFunc: func(_ context.Context, _, _ string) (domainauth.Session, error) {
			return domainauth.Session{ID: "sess-42", Token: "tok"}, nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := postForm("/login", url.Values{
		"email":        {"dana@example.com"},
		"password":     {"hunter2!"},
		"redirect_uri": {"https://evil.example/"},
	})
	w := httptest.NewRecorder()
	h.LoginSubmit(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRegisterSubmit_Success_RedirectsToLogin(t *testing.T) {
	var registered model.User
	svc := &mockAuthServiceForMiddleware{
		registerFunc: func(_ context.Context, user model.User) (model.User, error) {
			registered = user
			user.Password = ""
			return user, nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := postForm("/register", url.Values{
		"first_name":       {"Dana"},
		"last_name":        {"Levi"},
		"phone":            {"050-1234567"},
		"email":            {"dana@example.com"},
		"password":         {"Abcdef1!"},
		"confirm_password": {"Abcdef1!"},
		"country":          {"Israel"},
		"city":             {"Tel Aviv"},
		"street":           {"Dizengoff"},
		"house_number":     {"12"},
		"is_business":      {"on"},
	})
	w := httptest.NewRecorder()
	h.RegisterSubmit(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?registered=1", w.Header().Get("Location"))
	assert.Equal(t, "Dana", registered.Name.First)
	assert.Equal(t, "dana@example.com", registered.Email)
	assert.True(t, registered.IsBusiness)
	assert.Equal(t, 12, registered.Address.HouseNumber)
}

func TestLogout_ClearsCookieAndRedirects(t *testing.T) {
	var loggedOut string
	svc := &mockAuthServiceForMiddleware{
		logoutFunc: func(_ context.Context, sessionID string) error {
			loggedOut = sessionID
			return nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := postForm("/logout", url.Values{})
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-42"})
	w := httptest.NewRecorder()
	h.Logout(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, "sess-42", loggedOut)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
