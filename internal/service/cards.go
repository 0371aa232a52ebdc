package service

import (
	"context"
	"log/slog"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
)

// CardServiceOptions groups dependencies for CardService.
type CardServiceOptions struct {
	Cards  ports.CardsGateway
	Logger *slog.Logger
}

// CardService covers the public catalog plus the business owner's card
// management operations.
type CardService struct {
	cards  ports.CardsGateway
	logger *slog.Logger
}

// NewCardService constructs a new CardService.
func NewCardService(opts CardServiceOptions) *CardService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CardService{
		cards:  opts.Cards,
		logger: logger,
	}
}

// Browse returns the public catalog, narrowed by the free-text query when
// one is given. Filtering happens here rather than remotely; the catalog
// endpoint has no search parameter.
func (s *CardService) Browse(ctx context.Context, query string) ([]model.Card, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.FilterCards(cards, query), nil
}

// Get returns a single card by id.
func (s *CardService) Get(ctx context.Context, id string) (model.Card, error) {
	if id == "" {
		return model.Card{}, apperrors.NotFound("card not found")
	}
	return s.cards.GetByID(ctx, id)
}

// Favorites returns the catalog cards liked by the session's user.
func (s *CardService) Favorites(ctx context.Context, sess domainauth.Session) ([]model.Card, error) {
	if !sess.HasProfile() {
		return nil, apperrors.Authentication("login required")
	}

	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, err
	}

	liked := make([]model.Card, 0, len(cards))
	for _, card := range cards {
		if card.LikedBy(sess.Profile.ID) {
			liked = append(liked, card)
		}
	}
	return liked, nil
}

// MyCards returns the cards owned by the session's user.
func (s *CardService) MyCards(ctx context.Context, sess domainauth.Session) ([]model.Card, error) {
	if !sess.HasToken() {
		return nil, apperrors.Authentication("login required")
	}
	return s.cards.MyCards(ctx, sess.Token)
}

// Create publishes a new card for the session's user.
func (s *CardService) Create(ctx context.Context, sess domainauth.Session, in model.CardInput) (model.Card, error) {
	if !sess.HasToken() {
		return model.Card{}, apperrors.Authentication("login required")
	}
	return s.cards.Create(ctx, sess.Token, in)
}

// Update replaces a card's content.
func (s *CardService) Update(ctx context.Context, sess domainauth.Session, id string, in model.CardInput) (model.Card, error) {
	if !sess.HasToken() {
		return model.Card{}, apperrors.Authentication("login required")
	}
	if id == "" {
		return model.Card{}, apperrors.Validation("card id is required")
	}
	return s.cards.Update(ctx, sess.Token, id, in)
}

// Delete removes a card. Ownership is enforced by the cards service.
func (s *CardService) Delete(ctx context.Context, sess domainauth.Session, id string) error {
	if !sess.HasToken() {
		return apperrors.Authentication("login required")
	}
	if id == "" {
		return apperrors.Validation("card id is required")
	}
	return s.cards.Delete(ctx, sess.Token, id)
}
