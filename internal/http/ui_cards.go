package httpx

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
)

// Home renders the public card catalog with optional text search.
// GET /?q=<query>.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	// Search-as-you-type swaps only the grid, not the whole content area.
	if IsHTMX(r) && HXTarget(r) == "card-grid" {
		h.renderCardGrid(w, r, query)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "BizCardHub", PageTitle: "Business Cards", CurrentPage: PageHome},
		Fetch: func(ctx context.Context, data map[string]any) error {
			cards, err := h.CardSvc.Browse(ctx, query)
			if err != nil {
				return err
			}
			data["Cards"] = cards
			data["Query"] = query
			return nil
		},
	})
}

// renderCardGrid renders only the grid partial for live search swaps.
func (h *UIHandlers) renderCardGrid(w http.ResponseWriter, r *http.Request, query string) {
	cards, err := h.CardSvc.Browse(r.Context(), query)
	if err != nil {
		if h.sessionExpired(w, r, err) {
			return
		}
		triggerToast(w, processError(err, nil), "error")
		cards = nil
	}

	data := basePageData(r, PageMeta{CurrentPage: PageHome})
	data["Cards"] = cards
	data["Query"] = query
	if err := h.T.RenderNamed(w, "card-grid", data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "card grid render")
	}
}

// CardView renders a single card's detail page.
// GET /cards/{id}.
func (h *UIHandlers) CardView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	card, err := h.CardSvc.Get(r.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			h.NotFound(w, r)
			return
		}
		h.Page(w, r, PageSpec{
			Meta: PageMeta{Title: "Card - BizCardHub", PageTitle: "Card", CurrentPage: PageCardView},
			Fetch: func(context.Context, map[string]any) error {
				return err
			},
		})
		return
	}

	session := GetSessionFromContext(r.Context())
	data := basePageData(r, PageMeta{
		Title:       card.Title + " - BizCardHub",
		PageTitle:   card.Title,
		CurrentPage: PageCardView,
	})
	data["Card"] = card
	if session.HasProfile() {
		data["Liked"] = card.LikedBy(session.Profile.ID)
		data["CanEdit"] = card.OwnerID == session.Profile.ID || session.Profile.IsAdmin
	}
	h.renderAppPage(w, r, data)
}
