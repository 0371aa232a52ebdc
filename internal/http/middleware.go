package httpx

import (
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// getSessionFromRequest retrieves and validates a session from the request.
// A missing cookie or unknown session id yields the zero (guest) session.
func getSessionFromRequest(r *http.Request, authSvc AuthServiceInterface) (domainauth.Session, bool) {
	sessionCookie, err := r.Cookie("session_id")
	if err != nil {
		return domainauth.Session{}, false
	}

	session, err := authSvc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		return domainauth.Session{}, false
	}

	return session, true
}

// OptionalAuth returns a middleware that attaches the session to the request
// context when one exists. Unauthenticated requests continue as guests.
// Public pages still need the session to filter navigation entries.
func OptionalAuth(authSvc AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session, ok := getSessionFromRequest(r, authSvc); ok {
				r = r.WithContext(SetSessionInContext(r.Context(), session))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns a middleware that requires a signed-in session.
// Requests without a bearer token are redirected to the login page with the
// original destination preserved in redirect_uri.
func RequireAuth(authSvc AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := getSessionFromRequest(r, authSvc)
			if !ok || !session.HasToken() {
				redirectToLogin(w, r)
				return
			}

			ctx := SetSessionInContext(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireBusiness returns a middleware for routes restricted to business accounts.
// Admins pass as well. See requireAccess for the redirect split.
func RequireBusiness(authSvc AuthServiceInterface) func(http.Handler) http.Handler {
	return requireAccess(authSvc, func(role domainauth.Role) bool {
		return role == domainauth.RoleBusiness || role == domainauth.RoleAdmin
	})
}

// RequireAdmin returns a middleware for routes restricted to admin accounts.
func RequireAdmin(authSvc AuthServiceInterface) func(http.Handler) http.Handler {
	return requireAccess(authSvc, func(role domainauth.Role) bool {
		return role == domainauth.RoleAdmin
	})
}

// requireAccess enforces role checks with a strict redirect split:
// identity problems (no token, or profile not yet confirmed by the server)
// go to the login page; a confirmed identity that simply lacks the required
// flag goes to the home page. The two cases are never conflated.
func requireAccess(
	authSvc AuthServiceInterface,
	allowed func(domainauth.Role) bool,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := getSessionFromRequest(r, authSvc)
			if !ok || !session.HasToken() {
				redirectToLogin(w, r)
				return
			}

			// Token present but profile unresolved derives to guest. The
			// identity is unconfirmed, so this is still a login problem.
			if !session.HasProfile() {
				redirectToLogin(w, r)
				return
			}

			if !allowed(domainauth.DeriveRole(session)) {
				redirectHome(w, r)
				return
			}

			ctx := SetSessionInContext(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// redirectToLogin redirects browser requests to the login page with the current URL as redirect_uri.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectPath := redirectPathForRequest(r)
	if redirectPath == "" {
		redirectPath = "/"
	}
	loginURL := "/login?redirect_uri=" + url.QueryEscape(redirectPath)

	if IsHTMX(r) {
		// For HTMX requests, instruct the browser to navigate rather than
		// swapping the login page into a fragment target.
		SetHXRedirect(w, loginURL)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

// redirectHome sends an authorization failure back to the home page.
// The caller is signed in; bouncing them to login would be misleading.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	if IsHTMX(r) {
		SetHXRedirect(w, "/")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func redirectPathForRequest(r *http.Request) string {
	if IsHTMX(r) {
		if current := safeRedirectFromURL(r.Header.Get("Hx-Current-Url")); current != "" {
			return current
		}
		if referer := safeRedirectFromURL(r.Header.Get("Referer")); referer != "" {
			return referer
		}
	}

	return safeRedirectPath(r.URL.RequestURI())
}

func safeRedirectFromURL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	// Reject scheme-relative or host-only references.
	if u.Host != "" && !u.IsAbs() {
		return ""
	}

	// For absolute URLs, use just the path/query portion to keep redirects within the app.
	if u.IsAbs() {
		return safeRedirectPath(u.RequestURI())
	}

	return safeRedirectPath(raw)
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
