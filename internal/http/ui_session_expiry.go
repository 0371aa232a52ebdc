package httpx

import (
	"net/http"
	"strings"
	"time"

	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
)

// sessionExpired intercepts an authentication failure from a remote call made
// with a stored token. The server has started rejecting the credential, so the
// session record and its cookie are cleared and the caller is sent back to
// sign in with the current destination preserved.
//
// Returns false when the error is not an authentication failure, or when the
// request never carried a token: a guest attempt is not an expired session and
// keeps its normal toast flow.
func (h *UIHandlers) sessionExpired(w http.ResponseWriter, r *http.Request, err error) bool {
	if err == nil || !apperrors.IsAuthentication(err) {
		return false
	}

	session := GetSessionFromContext(r.Context())
	if !session.HasToken() {
		return false
	}

	if h.AuthSvc != nil {
		if logoutErr := h.AuthSvc.Logout(r.Context(), session.ID); logoutErr != nil {
			h.logger().Warn("clear rejected session failed", "error", logoutErr, "session_id", session.ID)
		}
	}

	expireCookie(w, r, "session_id", h.CookieDomain)
	redirectToLogin(w, r)
	return true
}

// expireCookie deletes a cookie, mirroring the attributes used when setting it
// (Secure, Path, Domain, SameSite) so browsers accept the deletion.
func expireCookie(w http.ResponseWriter, r *http.Request, name, domain string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
