package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
	"github.com/jersab/Poject-BizCardHub/internal/http/validation"
)

// --- Card form (create/edit/delete, business accounts only) ---

// cardForm mirrors the cards service's create/update schema.
type cardForm struct {
	Title       string `form:"title" validate:"required,min=2,max=256"`
	Subtitle    string `form:"subtitle" validate:"required,min=2,max=256"`
	Description string `form:"description" validate:"required,min=2,max=1024"`
	Phone       string `form:"phone" validate:"required,ilphone"`
	Email       string `form:"email" validate:"required,email"`
	Web         string `form:"web" validate:"omitempty,url"`
	ImageURL    string `form:"image_url" validate:"omitempty,url"`
	ImageAlt    string `form:"image_alt" validate:"omitempty,max=256"`
	State       string `form:"state" validate:"omitempty,max=256"`
	Country     string `form:"country" validate:"required,min=2,max=256"`
	City        string `form:"city" validate:"required,min=2,max=256"`
	Street      string `form:"street" validate:"required,min=2,max=256"`
	HouseNumber int    `form:"house_number" validate:"required,min=1"`
	Zip         int    `form:"zip" validate:"omitempty,min=0"`
}

func (f cardForm) toInput() model.CardInput {
	return model.CardInput{
		Title:       f.Title,
		Subtitle:    f.Subtitle,
		Description: f.Description,
		Phone:       f.Phone,
		Email:       f.Email,
		Web:         f.Web,
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

func (f cardForm) formValues() map[string]any {
	return map[string]any{
		"FormTitle":       f.Title,
		"FormSubtitle":    f.Subtitle,
		"FormDescription": f.Description,
		"FormPhone":       f.Phone,
		"FormEmail":       f.Email,
		"FormWeb":         f.Web,
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

// cardFormFromCard pre-fills the form from an existing card for edit mode.
func cardFormFromCard(c model.Card) cardForm {
	return cardForm{
		Title:       c.Title,
		Subtitle:    c.Subtitle,
		Description: c.Description,
		Phone:       c.Phone,
		Email:       c.Email,
		Web:         c.Web,
		ImageURL:    c.Image.URL,
		ImageAlt:    c.Image.Alt,
		State:       c.Address.State,
		Country:     c.Address.Country,
		City:        c.Address.City,
		Street:      c.Address.Street,
		HouseNumber: c.Address.HouseNumber,
		Zip:         c.Address.Zip,
	}
}

func parseCardForm(r *http.Request) (cardForm, map[string]string) {
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

	return cardForm{
		Title:       strings.TrimSpace(r.Form.Get("title")),
		Subtitle:    strings.TrimSpace(r.Form.Get("subtitle")),
		Description: strings.TrimSpace(r.Form.Get("description")),
		Phone:       strings.TrimSpace(r.Form.Get("phone")),
		Email:       strings.TrimSpace(r.Form.Get("email")),
		Web:         strings.TrimSpace(r.Form.Get("web")),
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

func cardFormTitles(mode FormMode) (string, string) {
	if mode == FormModeEdit {
		return "Edit Card - BizCardHub", "Edit Card"
	}
	return "New Card - BizCardHub", "New Card"
}

// renderCardForm renders the card create/edit form with common framing data.
func (h *UIHandlers) renderCardForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(mode FormMode) PageMeta {
			title, pageTitle := cardFormTitles(mode)
			return PageMeta{Title: title, PageTitle: pageTitle, CurrentPage: PageCardForm}
		},
	})
	h.renderAppPage(w, r, data)
}

// CardNew renders the create form.
// GET /cards/new.
func (h *UIHandlers) CardNew(w http.ResponseWriter, r *http.Request) {
	data := cardForm{}.formValues()
	data["Mode"] = FormModeCreate
	h.renderCardForm(w, r, data)
}

// CardEdit renders the edit form populated from an existing card.
// GET /cards/{id}/edit.
func (h *UIHandlers) CardEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}
	card, err := h.CardSvc.Get(r.Context(), id)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	// Only the owner (or an admin) may edit; others are sent to the detail view.
	session := GetSessionFromContext(r.Context())
	if !session.HasProfile() || (card.OwnerID != session.Profile.ID && !session.Profile.IsAdmin) {
		http.Redirect(w, r, "/cards/"+id, http.StatusSeeOther)
		return
	}

	data := cardFormFromCard(card).formValues()
	data["Mode"] = FormModeEdit
	data["CardID"] = card.ID
	h.renderCardForm(w, r, data)
}

// CardCreate handles POST to create a card.
// POST /cards.
func (h *UIHandlers) CardCreate(w http.ResponseWriter, r *http.Request) {
	form, parseErrs := parseCardForm(r)
	errs := validation.Struct(form)
	for k, v := range parseErrs {
		errs[k] = v
	}
	if len(errs) > 0 {
		h.renderCardFormError(w, r, cardFormErrorOpts{Form: form, FieldErrors: errs, Mode: FormModeCreate})
		return
	}

	session := GetSessionFromContext(r.Context())
	card, err := h.CardSvc.Create(r.Context(), session, form.toInput())
	if err != nil {
		if h.sessionExpired(w, r, err) {
			return
		}
		h.renderCardFormError(w, r, cardFormErrorOpts{Form: form, Err: err, Mode: FormModeCreate})
		return
	}

	triggerToast(w, "Card created.", "success")
	h.redirectAfterForm(w, r, "/cards/"+card.ID)
}

// CardUpdate handles POST to update an existing card.
// POST /cards/{id}.
func (h *UIHandlers) CardUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	form, parseErrs := parseCardForm(r)
	errs := validation.Struct(form)
	for k, v := range parseErrs {
		errs[k] = v
	}
	opts := cardFormErrorOpts{Form: form, Mode: FormModeEdit, CardID: id}
	if len(errs) > 0 {
		opts.FieldErrors = errs
		h.renderCardFormError(w, r, opts)
		return
	}

	session := GetSessionFromContext(r.Context())
	card, err := h.CardSvc.Update(r.Context(), session, id, form.toInput())
	if err != nil {
		if h.sessionExpired(w, r, err) {
			return
		}
		opts.Err = err
		h.renderCardFormError(w, r, opts)
		return
	}

	triggerToast(w, "Card updated.", "success")
	h.redirectAfterForm(w, r, "/cards/"+card.ID)
}

// CardDelete handles POST to delete a card.
// POST /cards/{id}/delete.
func (h *UIHandlers) CardDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	session := GetSessionFromContext(r.Context())
	if err := h.CardSvc.Delete(r.Context(), session, id); err != nil {
		if apperrors.IsNotFound(err) {
			h.NotFound(w, r)
			return
		}
		if h.sessionExpired(w, r, err) {
			return
		}
		triggerToast(w, processError(err, nil), "error")
		h.redirectAfterForm(w, r, "/my-cards")
		return
	}

	triggerToast(w, "Card deleted.", "success")
	h.redirectAfterForm(w, r, "/my-cards")
}

// cardFormErrorOpts groups re-render parameters for a failed card submission.
type cardFormErrorOpts struct {
	Form        cardForm
	Err         error
	FieldErrors map[string]string
	Mode        FormMode
	CardID      string
}

func (h *UIHandlers) renderCardFormError(w http.ResponseWriter, r *http.Request, opts cardFormErrorOpts) {
	title, pageTitle := cardFormTitles(opts.Mode)
	data := opts.Form.formValues()
	data["Mode"] = string(opts.Mode)
	if opts.CardID != "" {
		data["CardID"] = opts.CardID
	}
	RenderError(ErrorOpts{
		W: w, R: r,
		Err:         opts.Err,
		FieldErrors: opts.FieldErrors,
		Renderer: func(w http.ResponseWriter, r *http.Request, rendered any) {
			m, _ := rendered.(map[string]any)
			h.renderAppPage(w, r, m)
		},
		PageMeta:  PageMeta{Title: title, PageTitle: pageTitle, CurrentPage: PageCardForm},
		Data:      data,
		ShowToast: true,
	})
}

// redirectAfterForm navigates after a successful form action, htmx-aware.
func (h *UIHandlers) redirectAfterForm(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
