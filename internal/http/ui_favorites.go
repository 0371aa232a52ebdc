package httpx

import (
	"context"
	"net/http"
)

// Favorites renders the signed-in user's liked cards.
// GET /favorites.
func (h *UIHandlers) Favorites(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Favorites - BizCardHub", PageTitle: "Favorites", CurrentPage: PageFavorites},
		Fetch: func(ctx context.Context, data map[string]any) error {
			cards, err := h.CardSvc.Favorites(ctx, session)
			if err != nil {
				return err
			}
			data["Cards"] = cards
			return nil
		},
	})
}

// CardLikeToggle flips the like state of a card for the current user and
// re-renders the like button. The toggle is optimistic: the response reflects
// the flipped state when the remote call succeeds and the original state when
// it fails, with exactly one toast either way.
// POST /cards/{id}/like.
func (h *UIHandlers) CardLikeToggle(w http.ResponseWriter, r *http.Request) {
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

	session := GetSessionFromContext(r.Context())
	result, toggleErr := h.FavSvc.Toggle(r.Context(), session, card)
	if h.sessionExpired(w, r, toggleErr) {
		return
	}
	if toggleErr != nil {
		triggerToast(w, processError(toggleErr, nil), "error")
	} else if result.Liked {
		triggerToast(w, "Added to favorites.", "success")
	} else {
		triggerToast(w, "Removed from favorites.", "success")
	}

	data := basePageData(r, PageMeta{CurrentPage: PageFavorites})
	data["Card"] = result.Card
	data["Liked"] = result.Liked
	if err := h.T.RenderNamed(w, "like-button", data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "like button render")
	}
}
