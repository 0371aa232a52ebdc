package httpx

import (
	"context"
	"net/http"
)

// MyCards renders the signed-in business user's own cards.
// GET /my-cards.
func (h *UIHandlers) MyCards(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "My Cards - BizCardHub", PageTitle: "My Cards", CurrentPage: PageMyCards},
		Fetch: func(ctx context.Context, data map[string]any) error {
			cards, err := h.CardSvc.MyCards(ctx, session)
			if err != nil {
				return err
			}
			data["Cards"] = cards
			return nil
		},
	})
}
