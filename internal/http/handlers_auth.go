package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	"github.com/jersab/Poject-BizCardHub/internal/http/validation"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (domainauth.Session, error)
	Register(ctx context.Context, user model.User) (model.User, error)
	GetSession(ctx context.Context, sessionID string) (domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlers provides HTTP handlers for the sign-in, sign-up, and sign-out flows.
type AuthHandlers struct {
	T            *TemplateRenderer
	Svc          AuthServiceInterface
	CookieDomain string
	SessionTTL   time.Duration
	IsDev        bool
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// ui builds a throwaway UIHandlers so auth pages share the page renderer.
func (h *AuthHandlers) ui() *UIHandlers {
	return &UIHandlers{T: h.T, IsDev: h.IsDev, Logger: h.Logger}
}

// LoginPage renders the sign-in form.
// GET /login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already signed in: a second login is a no-op, go home.
	if session, ok := getSessionFromRequest(r, h.Svc); ok && session.HasToken() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := basePageData(r, loginPageMeta())
	data["RedirectURI"] = safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	data["Registered"] = r.URL.Query().Get("registered") == "1"
	data["FormEmail"] = ""
	data["Errors"] = map[string]string{}
	h.ui().renderAppPage(w, r, data)
}

// loginForm carries the sign-in submission.
type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// LoginSubmit handles the sign-in submission.
// POST /login.
func (h *AuthHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, nil, map[string]string{"_": "Invalid form submission."})
		return
	}

	form := loginForm{
		Email:    strings.TrimSpace(r.Form.Get("email")),
		Password: r.Form.Get("password"),
	}
	if errs := validation.Struct(form); len(errs) > 0 {
		h.renderLoginError(w, r, nil, errs)
		return
	}

	session, err := h.Svc.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		h.renderLoginError(w, r, err, nil)
		return
	}

	h.setSessionCookie(w, r, session.ID)

	redirectURI := safeRedirectPath(r.Form.Get("redirect_uri"))
	if IsHTMX(r) {
		HTMX(w).Redirect(redirectURI)
		return
	}
	http.Redirect(w, r, redirectURI, http.StatusSeeOther)
}

// renderLoginError re-renders the sign-in form with errors, preserving the email.
func (h *AuthHandlers) renderLoginError(
	w http.ResponseWriter, r *http.Request, err error, fieldErrors map[string]string,
) {
	ui := h.ui()
	RenderError(ErrorOpts{
		W: w, R: r,
		Err:         err,
		FieldErrors: fieldErrors,
		Renderer: func(w http.ResponseWriter, r *http.Request, data any) {
			m, _ := data.(map[string]any)
			ui.renderAppPage(w, r, m)
		},
		PageMeta: loginPageMeta(),
		Data: map[string]any{
			"FormEmail":   strings.TrimSpace(r.Form.Get("email")),
			"RedirectURI": safeRedirectPath(r.Form.Get("redirect_uri")),
		},
		ShowToast: true,
	})
}

func loginPageMeta() PageMeta {
	return PageMeta{Title: "Sign In - BizCardHub", PageTitle: "Sign In", CurrentPage: PageLogin}
}

// registerForm mirrors the users service's registration schema. Validation
// happens client-side here so obviously bad input never reaches the wire;
// the service re-validates and its verdict wins.
type registerForm struct {
	FirstName       string `form:"first_name" validate:"required,min=2,max=256"`
	MiddleName      string `form:"middle_name" validate:"omitempty,max=256"`
	LastName        string `form:"last_name" validate:"required,min=2,max=256"`
	Phone           string `form:"phone" validate:"required,ilphone"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=7,max=20,complexity"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
	ImageURL        string `form:"image_url" validate:"omitempty,url"`
	ImageAlt        string `form:"image_alt" validate:"omitempty,max=256"`
	State           string `form:"state" validate:"omitempty,max=256"`
	Country         string `form:"country" validate:"required,min=2,max=256"`
	City            string `form:"city" validate:"required,min=2,max=256"`
	Street          string `form:"street" validate:"required,min=2,max=256"`
	HouseNumber     int    `form:"house_number" validate:"required,min=1"`
	Zip             int    `form:"zip" validate:"omitempty,min=0"`
	IsBusiness      bool   `form:"is_business"`
}

// toUser converts the validated form into the remote service's user payload.
func (f registerForm) toUser() model.User {
	return model.User{
		Name: model.Name{
			First:  f.FirstName,
			Middle: f.MiddleName,
			Last:   f.LastName,
		},
		Phone:    f.Phone,
		Email:    f.Email,
		Password: f.Password,
		Image: model.Image{
			URL: f.ImageURL,
			Alt: f.ImageAlt,
		},
		Address: model.Address{
			State:       f.State,
			Country:     f.Country,
			City:        f.City,
			Street:      f.Street,
			HouseNumber: f.HouseNumber,
			Zip:         f.Zip,
		},
		IsBusiness: f.IsBusiness,
	}
}

// formValues round-trips submitted values back into the template on error.
func (f registerForm) formValues() map[string]any {
	return map[string]any{
		"FormFirstName":   f.FirstName,
		"FormMiddleName":  f.MiddleName,
		"FormLastName":    f.LastName,
		"FormPhone":       f.Phone,
		"FormEmail":       f.Email,
		"FormImageURL":    f.ImageURL,
		"FormImageAlt":    f.ImageAlt,
		"FormState":       f.State,
		"FormCountry":     f.Country,
		"FormCity":        f.City,
		"FormStreet":      f.Street,
		"FormHouseNumber": intOrEmpty(f.HouseNumber),
		"FormZip":         intOrEmpty(f.Zip),
		"FormIsBusiness":  f.IsBusiness,
	}
}

// RegisterPage renders the sign-up form.
// GET /register.
func (h *AuthHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if session, ok := getSessionFromRequest(r, h.Svc); ok && session.HasToken() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := basePageData(r, registerPageMeta())
	for k, v := range (registerForm{}).formValues() {
		data[k] = v
	}
	data["Errors"] = map[string]string{}
	h.ui().renderAppPage(w, r, data)
}

// RegisterSubmit handles the sign-up submission.
// POST /register.
func (h *AuthHandlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	form, parseErrs := parseRegisterForm(r)
	errs := validation.Struct(form)
	for k, v := range parseErrs {
		errs[k] = v
	}
	if len(errs) > 0 {
		h.renderRegisterError(w, r, nil, errs, form)
		return
	}

	if _, err := h.Svc.Register(r.Context(), form.toUser()); err != nil {
		h.renderRegisterError(w, r, err, nil, form)
		return
	}

	// Account created; the user still signs in themselves.
	if IsHTMX(r) {
		HTMX(w).Trigger("showToast", map[string]any{
			"message": "Account created. Please sign in.",
			"type":    "success",
		}).Redirect("/login?registered=1")
		return
	}
	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

func parseRegisterForm(r *http.Request) (registerForm, map[string]string) {
	errs := map[string]string{}
	if err := r.ParseForm(); err != nil {
		errs["_"] = "Invalid form submission."
	}

	houseNumber := 0
	if txt := strings.TrimSpace(r.Form.Get("house_number")); txt != "" {
		n, err := strconv.Atoi(txt)
		if err != nil {
			errs["house_number"] = "Enter a valid house number."
		} else {
			houseNumber = n
		}
	}
	zip := 0
	if txt := strings.TrimSpace(r.Form.Get("zip")); txt != "" {
		n, err := strconv.Atoi(txt)
		if err != nil {
			errs["zip"] = "Enter a valid zip code."
		} else {
			zip = n
		}
	}

	return registerForm{
		FirstName:       strings.TrimSpace(r.Form.Get("first_name")),
		MiddleName:      strings.TrimSpace(r.Form.Get("middle_name")),
		LastName:        strings.TrimSpace(r.Form.Get("last_name")),
		Phone:           strings.TrimSpace(r.Form.Get("phone")),
		Email:           strings.TrimSpace(r.Form.Get("email")),
		Password:        r.Form.Get("password"),
		ConfirmPassword: r.Form.Get("confirm_password"),
		ImageURL:        strings.TrimSpace(r.Form.Get("image_url")),
		ImageAlt:        strings.TrimSpace(r.Form.Get("image_alt")),
		State:           strings.TrimSpace(r.Form.Get("state")),
		Country:         strings.TrimSpace(r.Form.Get("country")),
		City:            strings.TrimSpace(r.Form.Get("city")),
		Street:          strings.TrimSpace(r.Form.Get("street")),
		HouseNumber:     houseNumber,
		Zip:             zip,
		IsBusiness:      r.Form.Get("is_business") == "on",
	}, errs
}

func (h *AuthHandlers) renderRegisterError(
	w http.ResponseWriter, r *http.Request, err error, fieldErrors map[string]string, form registerForm,
) {
	ui := h.ui()
	RenderError(ErrorOpts{
		W: w, R: r,
		Err:         err,
		FieldErrors: fieldErrors,
		Renderer: func(w http.ResponseWriter, r *http.Request, data any) {
			m, _ := data.(map[string]any)
			ui.renderAppPage(w, r, m)
		},
		PageMeta:  registerPageMeta(),
		Data:      form.formValues(),
		ShowToast: true,
	})
}

func registerPageMeta() PageMeta {
	return PageMeta{Title: "Sign Up - BizCardHub", PageTitle: "Sign Up", CurrentPage: PageRegister}
}

// Logout handles the sign-out endpoint.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	// Invalidate the server-side session if present
	if sessionCookie, err := r.Cookie("session_id"); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	// Clear session cookie on the client
	h.clearCookie(w, r, "session_id")

	if IsHTMX(r) {
		HTMX(w).Redirect("/")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// setSessionCookie writes the session cookie for the given session id.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, sessionID string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	ttl := h.SessionTTL
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	expireCookie(w, r, name, h.CookieDomain)
}
