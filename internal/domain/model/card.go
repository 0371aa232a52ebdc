package model

import (
	"slices"
	"strings"
	"time"
)

// Card is a business card as served by the remote cards service.
// Likes holds the ids of users who favorited the card.
type Card struct {
	ID          string     `json:"_id,omitempty"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Description string     `json:"description"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Web         string     `json:"web,omitempty"`
	Image       Image      `json:"image"`
	Address     Address    `json:"address"`
	BizNumber   int        `json:"bizNumber,omitempty"`
	Likes       []string   `json:"likes,omitempty"`
	OwnerID     string     `json:"user_id,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// LikedBy reports whether the given user id is in the card's likes set.
func (c Card) LikedBy(userID string) bool {
	if userID == "" {
		return false
	}
	return slices.Contains(c.Likes, userID)
}

// WithLike returns a copy of the card with the user id added to (liked=true)
// or removed from (liked=false) the likes set. The receiver is not mutated:
// the same card value may be referenced from several list views at once, so
// reconciliation must produce a new value rather than aliasing the slice.
func (c Card) WithLike(userID string, liked bool) Card {
	next := c
	if liked {
		if c.LikedBy(userID) {
			next.Likes = slices.Clone(c.Likes)
			return next
		}
		next.Likes = append(slices.Clone(c.Likes), userID)
		return next
	}
	next.Likes = slices.DeleteFunc(slices.Clone(c.Likes), func(id string) bool {
		return id == userID
	})
	return next
}

// MatchesQuery reports whether the card matches a free-text search query.
// Matching is a case-insensitive substring test over title, subtitle and
// description, evaluated in the presentation layer.
func (c Card) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, field := range []string{c.Title, c.Subtitle, c.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterCards returns the cards matching the query, preserving order.
func FilterCards(cards []Card, q string) []Card {
	if strings.TrimSpace(q) == "" {
		return cards
	}
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.MatchesQuery(q) {
			out = append(out, c)
		}
	}
	return out
}

// CardInput is the create/update payload for the cards service. The service
// derives bizNumber, likes and ownership itself.
type CardInput struct {
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Description string  `json:"description"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Web         string  `json:"web,omitempty"`
	Image       Image   `json:"image"`
	Address     Address `json:"address"`
}
