package ports

import (
	"context"

	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
)

// UsersGateway is the typed client for the remote users service.
// Methods taking a token attach it verbatim as the x-auth-token header.
type UsersGateway interface {
	// Register creates a new user; the error body from the service is
	// surfaced verbatim on validation failure.
	Register(ctx context.Context, user model.User) (model.User, error)
	// Login exchanges credentials for an opaque bearer token string.
	Login(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, token, id string) (model.User, error)
	Update(ctx context.Context, token, id string, upd model.UserUpdate) (model.User, error)
	// ToggleBusiness flips the user's business flag (admin flows only).
	ToggleBusiness(ctx context.Context, token, id string) (model.User, error)
	Delete(ctx context.Context, token, id string) error
	// List returns all users (admin only).
	List(ctx context.Context, token string) ([]model.User, error)
}

// CardsGateway is the typed client for the remote cards service.
type CardsGateway interface {
	List(ctx context.Context) ([]model.Card, error)
	GetByID(ctx context.Context, id string) (model.Card, error)
	MyCards(ctx context.Context, token string) ([]model.Card, error)
	Create(ctx context.Context, token string, in model.CardInput) (model.Card, error)
	Update(ctx context.Context, token, id string, in model.CardInput) (model.Card, error)
	// ToggleLike flips the caller's like on the card.
	ToggleLike(ctx context.Context, token, id string) error
	Delete(ctx context.Context, token, id string) error
}
