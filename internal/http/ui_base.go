package httpx

import (
	"context"
	"html"
	"log/slog"
	"maps"
	"net/http"
	"strings"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	"github.com/jersab/Poject-BizCardHub/internal/service"
)

// CardsService is a minimal interface for UI needs.
type CardsService interface {
	Browse(ctx context.Context, query string) ([]model.Card, error)
	Get(ctx context.Context, id string) (model.Card, error)
	Favorites(ctx context.Context, sess domainauth.Session) ([]model.Card, error)
	MyCards(ctx context.Context, sess domainauth.Session) ([]model.Card, error)
	Create(ctx context.Context, sess domainauth.Session, in model.CardInput) (model.Card, error)
	Update(ctx context.Context, sess domainauth.Session, id string, in model.CardInput) (model.Card, error)
	Delete(ctx context.Context, sess domainauth.Session, id string) error
}

// UsersService is a minimal interface for profile and moderation UI needs.
type UsersService interface {
	UpdateProfile(ctx context.Context, sess domainauth.Session, upd model.UserUpdate) (model.User, error)
	ListUsers(ctx context.Context, sess domainauth.Session) ([]model.User, error)
	ToggleBusiness(ctx context.Context, sess domainauth.Session, userID string) (model.User, error)
	DeleteUser(ctx context.Context, sess domainauth.Session, userID string) error
}

// FavoritesService is a minimal interface for the like toggle.
type FavoritesService interface {
	Toggle(ctx context.Context, sess domainauth.Session, card model.Card) (service.ToggleResult, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ CardsService         = (*service.CardService)(nil)
	_ UsersService         = (*service.UserService)(nil)
	_ FavoritesService     = (*service.FavoriteService)(nil)
	_ AuthServiceInterface = (*service.AuthService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T       *TemplateRenderer
	CardSvc CardsService
	UserSvc UsersService
	FavSvc  FavoritesService
	AuthSvc AuthServiceInterface

	CookieDomain string
	IsDev        bool // Development mode flag for enhanced error reporting
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
// Centralizing this avoids repeating the boilerplate map construction across handlers.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// intOrEmpty renders zero ints as an empty string so numeric form inputs
// start blank instead of pre-filled with 0.
func intOrEmpty(n int) any {
	if n == 0 {
		return ""
	}
	return n
}

// FormFrameOpts captures the parameters required to normalize common form data.
type FormFrameOpts struct {
	R           *http.Request
	Data        map[string]any
	DefaultMode FormMode
	MetaForMode func(FormMode) PageMeta
}

// prepareFormFrame normalizes common form rendering fields (Errors, Mode, base layout).
// Returns the hydrated data map and the resolved form mode for further customization.
func prepareFormFrame(opts FormFrameOpts) (map[string]any, FormMode) {
	data := opts.Data
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Errors"]; !ok || data["Errors"] == nil {
		data["Errors"] = map[string]string{}
	}

	mode := resolveFormMode(data["Mode"], opts.DefaultMode)
	data["Mode"] = string(mode)

	if opts.MetaForMode != nil && opts.R != nil {
		maps.Copy(data, basePageData(opts.R, opts.MetaForMode(mode)))
	}

	return data, mode
}

// resolveFormMode coerces assorted Mode representations to a FormMode value.
func resolveFormMode(raw any, fallback FormMode) FormMode {
	switch v := raw.(type) {
	case FormMode:
		if v != "" {
			return v
		}
	case string:
		candidate := FormMode(strings.TrimSpace(v))
		if candidate != "" {
			return candidate
		}
	}
	return fallback
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			if h.sessionExpired(w, r, err) {
				return
			}
			markPageError(data, err)
		}
	}
	h.renderAppPage(w, r, data)
}

// renderAppPage renders a page with proper HTMX partial support.
func (h *UIHandlers) renderAppPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	// Handle full page requests first (early return) to reduce nesting
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	// For HTMX requests, render the content plus out-of-band header updates
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Hint client JS to update nav active state based on current path
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	title, _ := data["Title"].(string)
	currentPage, _ := data["CurrentPage"].(string)

	// Include a <title> element so htmx updates document.title on partial swaps
	safeDocTitle := html.EscapeString(title)
	if _, err := w.Write([]byte(`<title>` + safeDocTitle + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	if err := h.T.RenderContent(w, currentPage, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}
}

// markPageError records a fetch failure on the page data without aborting the render.
func markPageError(data map[string]any, err error) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = processError(err, nil)
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	// In dev mode, show detailed error in the response
	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errHTML := html.EscapeString(err.Error())
		pathHTML := html.EscapeString(r.URL.Path)
		contextHTML := html.EscapeString(context)
		if _, writeErr := w.Write([]byte(`
			<div style="padding: 20px; background: #fee; border: 2px solid #c33; border-radius: 4px; margin: 20px; font-family: monospace;">
				<h2 style="color: #c33; margin-top: 0;">Template Rendering Error</h2>
				<p><strong>Context:</strong> ` + contextHTML + `</p>
				<p><strong>Path:</strong> ` + pathHTML + `</p>
				<pre style="background: #fff; padding: 10px; border: 1px solid #ccc; overflow-x: auto;">` + errHTML + `</pre>
			</div>
		`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	// In production, show generic error
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
