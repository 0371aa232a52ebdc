package httpx

import (
	"net/http"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
)

// NavEntry describes one navigation link and the visibility predicate that
// decides whether the current session may see it. Entries are filtered per
// render so role changes take effect on the next request.
type NavEntry struct {
	Label string
	Path  string
	Page  string

	RequireAuth     bool // visible only with a confirmed signed-in identity
	RequireBusiness bool // business or admin
	RequireAdmin    bool // admin only
	GuestOnly       bool // hidden once signed in
}

// navEntries is the full navigation in display order. Visibility is computed
// per request; the slice itself is never mutated.
//
//nolint:gochecknoglobals // static read-only navigation definition
var navEntries = []NavEntry{
	{Label: "Home", Path: "/", Page: PageHome},
	{Label: "About", Path: "/about", Page: PageAbout},
	{Label: "Favorites", Path: "/favorites", Page: PageFavorites, RequireAuth: true},
	{Label: "My Cards", Path: "/my-cards", Page: PageMyCards, RequireBusiness: true},
	{Label: "Sandbox", Path: "/sandbox", Page: PageSandbox, RequireAdmin: true},
	{Label: "Sign Up", Path: "/register", Page: PageRegister, GuestOnly: true},
	{Label: "Sign In", Path: "/login", Page: PageLogin, GuestOnly: true},
}

// VisibleTo reports whether the entry should be shown for the given session.
// Visibility mirrors route access: a link appears exactly when the matching
// guard would admit the request. RequireAuth therefore checks token presence
// (the guard admits a token-bearing session even while its profile is still
// resolving), while the role-gated entries need the resolved profile the
// role guards demand.
func (e NavEntry) VisibleTo(session domainauth.Session) bool {
	role := domainauth.DeriveRole(session)
	switch {
	case e.RequireAdmin:
		return role == domainauth.RoleAdmin
	case e.RequireBusiness:
		return role == domainauth.RoleBusiness || role == domainauth.RoleAdmin
	case e.RequireAuth:
		return session.HasToken()
	case e.GuestOnly:
		return !session.HasToken()
	default:
		return true
	}
}

// visibleNavEntries filters navEntries for the session.
func visibleNavEntries(session domainauth.Session) []NavEntry {
	out := make([]NavEntry, 0, len(navEntries))
	for _, e := range navEntries {
		if e.VisibleTo(session) {
			out = append(out, e)
		}
	}
	return out
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// basePageData constructs the common page data map with session context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	session := GetSessionFromContext(r.Context())
	role := domainauth.DeriveRole(session)

	data := map[string]any{
		"Title":           meta.Title,
		"PageTitle":       meta.PageTitle,
		"CurrentPage":     meta.CurrentPage,
		"Nav":             visibleNavEntries(session),
		"IsAuthenticated": role != domainauth.RoleGuest,
		"IsBusiness":      role == domainauth.RoleBusiness || role == domainauth.RoleAdmin,
		"IsAdmin":         role == domainauth.RoleAdmin,
		"Role":            string(role),
	}

	if session.HasProfile() {
		data["User"] = session.Profile
		data["UserID"] = session.Profile.ID
		data["UserName"] = session.Profile.Name.Display()
	}

	return data
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{
		data: basePageData(r, meta),
		r:    r,
	}
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
