package httpx

import (
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	bizcardhub "github.com/jersab/Poject-BizCardHub"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthServiceInterface
	Cards     CardsService
	Users     UsersService
	Favorites FavoritesService

	CookieDomain string
	SessionTTL   time.Duration
	IsDev        bool         // Development mode flag for hot reloading, etc.
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	uiHandlers := setupUIHandlers(services)
	authHandlers := &AuthHandlers{
		T:            uiHandlers.T,
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		SessionTTL:   services.SessionTTL,
		IsDev:        services.IsDev,
		Logger:       services.Logger,
	}

	cfg := uiRouteConfig{Auth: services.Auth}
	registerPublicRoutes(mux, uiHandlers, cfg)
	registerAuthRoutes(mux, authHandlers)
	registerAccountRoutes(mux, uiHandlers, cfg)
	registerBusinessRoutes(mux, uiHandlers, cfg)
	registerAdminRoutes(mux, uiHandlers, cfg)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticHandler(services.IsDev))

	// Everything else is a 404 rendered through the UI handlers
	mux.Handle("/", cfg.optionalWrap()(http.HandlerFunc(uiHandlers.NotFound)))

	var handler http.Handler = mux
	handler = BrowserDetection()(handler)
	handler = Compression()(handler)
	if services.Logger != nil {
		handler = Recover(services.Logger)(handler)
		handler = Logging(services.Logger)(handler)
	}
	return handler
}

// uiRouteConfig carries the auth service so route groups can build guards.
type uiRouteConfig struct {
	Auth AuthServiceInterface
}

func (c uiRouteConfig) optionalWrap() func(http.Handler) http.Handler {
	return OptionalAuth(c.Auth)
}

func (c uiRouteConfig) authWrap() func(http.Handler) http.Handler {
	return RequireAuth(c.Auth)
}

func (c uiRouteConfig) businessWrap() func(http.Handler) http.Handler {
	return RequireBusiness(c.Auth)
}

func (c uiRouteConfig) adminWrap() func(http.Handler) http.Handler {
	return RequireAdmin(c.Auth)
}

// registerPublicRoutes wires pages every visitor can reach. The session is
// still attached when present so the nav and like states render correctly.
func registerPublicRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.optionalWrap()
	mux.Handle("GET /{$}", wrap(http.HandlerFunc(h.Home)))
	mux.Handle("GET /about", wrap(http.HandlerFunc(h.About)))
	mux.Handle("GET /cards/{id}", wrap(http.HandlerFunc(h.CardView)))
	// Guests hitting the toggle get a toast telling them to sign in;
	// the card state does not change.
	mux.Handle("POST /cards/{id}/like", wrap(http.HandlerFunc(h.CardLikeToggle)))
}

// registerAuthRoutes wires sign-in, sign-up, and sign-out.
func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.Handle("GET /login", http.HandlerFunc(h.LoginPage))
	mux.Handle("POST /login", http.HandlerFunc(h.LoginSubmit))
	mux.Handle("GET /register", http.HandlerFunc(h.RegisterPage))
	mux.Handle("POST /register", http.HandlerFunc(h.RegisterSubmit))
	mux.Handle("POST /logout", http.HandlerFunc(h.Logout))
}

// registerAccountRoutes wires pages that require a signed-in session.
func registerAccountRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /favorites", wrap(http.HandlerFunc(h.Favorites)))
	mux.Handle("GET /profile", wrap(http.HandlerFunc(h.Profile)))
	mux.Handle("POST /profile", wrap(http.HandlerFunc(h.ProfileUpdate)))
}

// registerBusinessRoutes wires card management, restricted to business accounts.
func registerBusinessRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrapBiz := cfg.businessWrap()
	mux.Handle("GET /my-cards", wrapBiz(http.HandlerFunc(h.MyCards)))
	mux.Handle("GET /cards/new", wrapBiz(http.HandlerFunc(h.CardNew)))
	mux.Handle("GET /cards/{id}/edit", wrapBiz(http.HandlerFunc(h.CardEdit)))
	mux.Handle("POST /cards", wrapBiz(http.HandlerFunc(h.CardCreate)))
	mux.Handle("POST /cards/{id}", wrapBiz(http.HandlerFunc(h.CardUpdate)))
	mux.Handle("POST /cards/{id}/delete", wrapBiz(http.HandlerFunc(h.CardDelete)))
}

// registerAdminRoutes wires the user moderation sandbox (admin-only).
func registerAdminRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrapAdmin := cfg.adminWrap()
	mux.Handle("GET /sandbox", wrapAdmin(http.HandlerFunc(h.AdminUsers)))
	mux.Handle("POST /sandbox/users/{id}/toggle-business", wrapAdmin(http.HandlerFunc(h.AdminUserToggleBusiness)))
	mux.Handle("POST /sandbox/users/{id}/delete", wrapAdmin(http.HandlerFunc(h.AdminUserDelete)))
}

// setupUIHandlers creates UI handlers with a template renderer.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (services.IsDev=false), templates are loaded from embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	var templateFS fs.FS
	if services.IsDev {
		templateFS = os.DirFS(TemplatePathFromRoot)
	} else {
		sub, err := fs.Sub(bizcardhub.TemplateFS, "frontend/templates")
		if err != nil {
			log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
			sub = os.DirFS(TemplatePathFromRoot)
		}
		templateFS = sub
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		DevMode:    services.IsDev,
		Logger:     services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
	}

	return &UIHandlers{
		T:            tr,
		CardSvc:      services.Cards,
		UserSvc:      services.Users,
		FavSvc:       services.Favorites,
		AuthSvc:      services.Auth,
		CookieDomain: services.CookieDomain,
		IsDev:        services.IsDev,
		Logger:       services.Logger,
	}
}

// staticHandler serves /static/* assets.
func staticHandler(isDev bool) http.Handler {
	if isDev {
		// Dev mode: serve from disk for hot reloading
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}

	staticSub, err := fs.Sub(bizcardhub.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		// Fallback to disk serving if embed fails
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// staticWithCacheHeaders adds a modest cache policy for static assets.
func staticWithCacheHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
