package service

import (
	"context"
	"log/slog"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
)

// FavoriteServiceOptions groups dependencies for FavoriteService.
type FavoriteServiceOptions struct {
	Cards  ports.CardsGateway
	Logger *slog.Logger
}

// FavoriteService implements the like toggle with optimistic semantics:
// the caller gets the flipped card state to render immediately, backed by
// the remote toggle, with a rollback value when the remote call fails.
type FavoriteService struct {
	cards  ports.CardsGateway
	logger *slog.Logger
}

// NewFavoriteService constructs a new FavoriteService.
func NewFavoriteService(opts FavoriteServiceOptions) *FavoriteService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &FavoriteService{
		cards:  opts.Cards,
		logger: logger,
	}
}

// ToggleResult carries the card state to render after a toggle attempt.
// Card is the reconciled state on success and the original state after a
// rollback. Liked reflects the rendered state's flag for the current user.
type ToggleResult struct {
	Card  model.Card
	Liked bool
}

// Toggle flips the session user's like on a card.
//
// Without a token it fails fast with a user-facing message and no network
// call. Otherwise the flip is computed locally first, the remote toggle is
// issued, and the outcome decides what the caller renders: the locally
// reconciled card on success, the original card on failure. Exactly one
// notification is owed per completion; the caller renders it from the
// returned error. No retries, no dedup; the last completion wins.
func (s *FavoriteService) Toggle(ctx context.Context, sess domainauth.Session, card model.Card) (ToggleResult, error) {
	if !sess.HasToken() || !sess.HasProfile() {
		return ToggleResult{Card: card, Liked: false},
			apperrors.Authentication("log in to favorite cards")
	}

	userID := sess.Profile.ID
	wasLiked := card.LikedBy(userID)
	optimistic := card.WithLike(userID, !wasLiked)

	if err := s.cards.ToggleLike(ctx, sess.Token, card.ID); err != nil {
		s.logger.Warn("like toggle failed, rolling back",
			"card_id", card.ID, "user_id", userID, "error", err)
		return ToggleResult{Card: card, Liked: wasLiked}, err
	}

	return ToggleResult{Card: optimistic, Liked: !wasLiked}, nil
}
