package testutil

import (
	"fmt"
	"time"

	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
)

// UserBuilder provides a fluent interface for building User objects for testing.
type UserBuilder struct {
	user model.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: model.User{
			ID:    "user-1",
			Name:  model.Name{First: "Test", Last: "User"},
			Phone: "050-0000000",
			Email: "test@example.com",
			Address: model.Address{
				Country:     "Israel",
				City:        "Tel Aviv",
				Street:      "Herzl",
				HouseNumber: 1,
			},
			CreatedAt: TimePtr(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
		},
	}
}

// WithID sets the user ID.
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.user.ID = id
	return b
}

// WithName sets the user's first and last name.
func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.user.Name.First = first
	b.user.Name.Last = last
	return b
}

// WithEmail sets the user's email address.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// AsBusiness marks the user as a business account.
func (b *UserBuilder) AsBusiness() *UserBuilder {
	b.user.IsBusiness = true
	return b
}

// AsAdmin marks the user as an administrator.
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.IsAdmin = true
	return b
}

// Build returns the constructed user.
func (b *UserBuilder) Build() model.User {
	return b.user
}

// CardBuilder provides a fluent interface for building Card objects for testing.
type CardBuilder struct {
	card model.Card
}

// NewCard creates a new CardBuilder with sensible defaults.
func NewCard() *CardBuilder {
	return &CardBuilder{
		card: model.Card{
			ID:          "card-1",
			Title:       "Test Business",
			Subtitle:    "Quality services",
			Description: "A test business card",
			Phone:       "050-0000001",
			Email:       "biz@example.com",
			Web:         "https://example.com",
			Address: model.Address{
				Country:     "Israel",
				City:        "Haifa",
				Street:      "HaNamal",
				HouseNumber: 5,
			},
			BizNumber: 1000001,
			OwnerID:   "user-1",
			CreatedAt: TimePtr(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)),
		},
	}
}

// WithID sets the card ID.
func (b *CardBuilder) WithID(id string) *CardBuilder {
	b.card.ID = id
	return b
}

// WithTitle sets the card title.
func (b *CardBuilder) WithTitle(title string) *CardBuilder {
	b.card.Title = title
	return b
}

// WithSubtitle sets the card subtitle.
func (b *CardBuilder) WithSubtitle(subtitle string) *CardBuilder {
	b.card.Subtitle = subtitle
	return b
}

// WithDescription sets the card description.
func (b *CardBuilder) WithDescription(description string) *CardBuilder {
	b.card.Description = description
	return b
}

// WithOwner sets the owning user's ID.
func (b *CardBuilder) WithOwner(userID string) *CardBuilder {
	b.card.OwnerID = userID
	return b
}

// LikedBy appends user IDs to the card's likes list.
func (b *CardBuilder) LikedBy(userIDs ...string) *CardBuilder {
	b.card.Likes = append(b.card.Likes, userIDs...)
	return b
}

// Build returns the constructed card.
func (b *CardBuilder) Build() model.Card {
	return b.card
}

// Cards builds n distinct cards, useful for list fixtures.
func Cards(n int) []model.Card {
	cards := make([]model.Card, 0, n)
	for i := 1; i <= n; i++ {
		cards = append(cards, NewCard().
			WithID(fmt.Sprintf("card-%d", i)).
			WithTitle(fmt.Sprintf("Business %d", i)).
			Build())
	}
	return cards
}
