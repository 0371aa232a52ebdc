package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	"github.com/jersab/Poject-BizCardHub/internal/http/validation"
)

// profileForm is the editable subset of the account record. Email, password,
// and account flags are not updatable through this path.
type profileForm struct {
	FirstName   string `form:"first_name" validate:"required,min=2,max=256"`
	MiddleName  string `form:"middle_name" validate:"omitempty,max=256"`
	LastName    string `form:"last_name" validate:"required,min=2,max=256"`
	Phone       string `form:"phone" validate:"required,ilphone"`
	ImageURL    string `form:"image_url" validate:"omitempty,url"`
	ImageAlt    string `form:"image_alt" validate:"omitempty,max=256"`
	State       string `form:"state" validate:"omitempty,max=256"`
	Country     string `form:"country" validate:"required,min=2,max=256"`
	City        string `form:"city" validate:"required,min=2,max=256"`
	Street      string `form:"street" validate:"required,min=2,max=256"`
	HouseNumber int    `form:"house_number" validate:"required,min=1"`
	Zip         int    `form:"zip" validate:"omitempty,min=0"`
}

func (f profileForm) toUpdate() model.UserUpdate {
	return model.UserUpdate{
		Name: model.Name{
			First:  f.FirstName,
			Middle: f.MiddleName,
			Last:   f.LastName,
		},
		Phone: f.Phone,
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
	}
}

func (f profileForm) formValues() map[string]any {
	return map[string]any{
		"FormFirstName":   f.FirstName,
		"FormMiddleName":  f.MiddleName,
		"FormLastName":    f.LastName,
		"FormPhone":       f.Phone,
		"FormImageURL":    f.ImageURL,
		"FormImageAlt":    f.ImageAlt,
		"FormState":       f.State,
		"FormCountry":     f.Country,
		"FormCity":        f.City,
		"FormStreet":      f.Street,
		"FormHouseNumber": intOrEmpty(f.HouseNumber),
		"FormZip":         intOrEmpty(f.Zip),
	}
}

// profileFormFromUser pre-fills the form from the stored profile.
func profileFormFromUser(u model.User) profileForm {
	return profileForm{
		FirstName:   u.Name.First,
		MiddleName:  u.Name.Middle,
		LastName:    u.Name.Last,
		Phone:       u.Phone,
		ImageURL:    u.Image.URL,
		ImageAlt:    u.Image.Alt,
		State:       u.Address.State,
		Country:     u.Address.Country,
		City:        u.Address.City,
		Street:      u.Address.Street,
		HouseNumber: u.Address.HouseNumber,
		Zip:         u.Address.Zip,
	}
}

func parseProfileForm(r *http.Request) (profileForm, map[string]string) {
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

	return profileForm{
		FirstName:   strings.TrimSpace(r.Form.Get("first_name")),
		MiddleName:  strings.TrimSpace(r.Form.Get("middle_name")),
		LastName:    strings.TrimSpace(r.Form.Get("last_name")),
		Phone:       strings.TrimSpace(r.Form.Get("phone")),
		ImageURL:    strings.TrimSpace(r.Form.Get("image_url")),
		ImageAlt:    strings.TrimSpace(r.Form.Get("image_alt")),
		State:       strings.TrimSpace(r.Form.Get("state")),
		Country:     strings.TrimSpace(r.Form.Get("country")),
		City:        strings.TrimSpace(r.Form.Get("city")),
		Street:      strings.TrimSpace(r.Form.Get("street")),
		HouseNumber: houseNumber,
		Zip:         zip,
	}, errs
}

func profilePageMeta() PageMeta {
	return PageMeta{Title: "Profile - BizCardHub", PageTitle: "Edit Profile", CurrentPage: PageProfile}
}

// Profile renders the profile edit form pre-filled from the session's profile.
// GET /profile.
func (h *UIHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if !session.HasProfile() {
		redirectToLogin(w, r)
		return
	}

	data := profileFormFromUser(*session.Profile).formValues()
	data["Errors"] = map[string]string{}
	for k, v := range basePageData(r, profilePageMeta()) {
		data[k] = v
	}
	h.renderAppPage(w, r, data)
}

// ProfileUpdate handles the profile edit submission.
// POST /profile.
func (h *UIHandlers) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	form, parseErrs := parseProfileForm(r)
	errs := validation.Struct(form)
	for k, v := range parseErrs {
		errs[k] = v
	}
	if len(errs) > 0 {
		h.renderProfileError(w, r, nil, errs, form)
		return
	}

	if _, err := h.UserSvc.UpdateProfile(r.Context(), session, form.toUpdate()); err != nil {
		if h.sessionExpired(w, r, err) {
			return
		}
		h.renderProfileError(w, r, err, nil, form)
		return
	}

	triggerToast(w, "Profile updated.", "success")
	h.redirectAfterForm(w, r, "/profile")
}

func (h *UIHandlers) renderProfileError(
	w http.ResponseWriter, r *http.Request, err error, fieldErrors map[string]string, form profileForm,
) {
	RenderError(ErrorOpts{
		W: w, R: r,
		Err:         err,
		FieldErrors: fieldErrors,
		Renderer: func(w http.ResponseWriter, r *http.Request, data any) {
			m, _ := data.(map[string]any)
			h.renderAppPage(w, r, m)
		},
		PageMeta:  profilePageMeta(),
		Data:      form.formValues(),
		ShowToast: true,
	})
}
