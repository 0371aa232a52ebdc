package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
// These constants ensure consistency across UI handlers and template mapping.
const (
	// Main navigation pages.
	PageHome      = "home"
	PageAbout     = "about"
	PageFavorites = "favorites"

	// Card-related pages.
	PageCardView = "card-view" // card detail view
	PageMyCards  = "my-cards"
	PageCardForm = "card-form" // create/edit form

	// Account pages.
	PageLogin    = "login"
	PageRegister = "register"
	PageProfile  = "profile"

	// Admin pages.
	PageSandbox = "sandbox" // user moderation table
)

// Template paths used for loading templates in tests and production.
const (
	// Template directory paths.
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// FormMode represents the mode of a form (create or edit).
// Using a dedicated type improves compile-time checks and prevents typos.
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageHome:      "home-content",
	PageAbout:     "about-content",
	PageFavorites: "favorites-content",
	PageCardView:  "card-view-content",
	PageMyCards:   "my-cards-content",
	PageCardForm:  "card-form-content",
	PageLogin:     "login-content",
	PageRegister:  "register-content",
	PageProfile:   "profile-content",
	PageSandbox:   "sandbox-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
// This is the single source of truth for page-to-template mapping.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to home-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "home-content"
}
