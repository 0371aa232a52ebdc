package bcardapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
)

// CardsClient talks to the remote cards service.
type CardsClient struct {
	client
}

var _ ports.CardsGateway = (*CardsClient)(nil)

// NewCardsClient creates a cards service client. Pass a nil http.Client to
// use a default with a request timeout.
func NewCardsClient(baseURL string, hc *http.Client) *CardsClient {
	return &CardsClient{client: newClient(baseURL, hc)}
}

// List returns the public card catalog. No token is required.
func (c *CardsClient) List(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	if err := c.doJSON(ctx, http.MethodGet, "/cards", "", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *CardsClient) GetByID(ctx context.Context, id string) (model.Card, error) {
	var card model.Card
	if err := c.doJSON(ctx, http.MethodGet, "/cards/"+url.PathEscape(id), "", nil, &card); err != nil {
		return model.Card{}, err
	}
	return card, nil
}

// MyCards returns the cards owned by the token's user.
func (c *CardsClient) MyCards(ctx context.Context, token string) ([]model.Card, error) {
	var cards []model.Card
	if err := c.doJSON(ctx, http.MethodGet, "/cards/my-cards", token, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *CardsClient) Create(ctx context.Context, token string, in model.CardInput) (model.Card, error) {
	var card model.Card
	if err := c.doJSON(ctx, http.MethodPost, "/cards", token, in, &card); err != nil {
		return model.Card{}, err
	}
	return card, nil
}

func (c *CardsClient) Update(ctx context.Context, token, id string, in model.CardInput) (model.Card, error) {
	var card model.Card
	if err := c.doJSON(ctx, http.MethodPut, "/cards/"+url.PathEscape(id), token, in, &card); err != nil {
		return model.Card{}, err
	}
	return card, nil
}

// ToggleLike flips the caller's like on the card server-side. The response
// body is ignored; callers reconcile their local copy themselves.
func (c *CardsClient) ToggleLike(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodPatch, "/cards/"+url.PathEscape(id), token, nil, nil)
}

func (c *CardsClient) Delete(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/cards/"+url.PathEscape(id), token, nil, nil)
}
