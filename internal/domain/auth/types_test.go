package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
)

func profileWith(isBusiness, isAdmin bool) *model.User {
	return &model.User{
		ID:         "u1",
		Name:       model.Name{First: "Dana", Last: "Levi"},
		IsBusiness: isBusiness,
		IsAdmin:    isAdmin,
	}
}

func TestDeriveRole(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    Role
	}{
		{name: "empty session is guest", session: Session{}, want: RoleGuest},
		{
			name:    "token without profile stays guest",
			session: Session{ID: "s1", Token: "tok"},
			want:    RoleGuest,
		},
		{
			name:    "profile without token stays guest",
			session: Session{ID: "s1", Profile: profileWith(true, true)},
			want:    RoleGuest,
		},
		{
			name:    "plain user",
			session: Session{Token: "tok", Profile: profileWith(false, false)},
			want:    RoleUser,
		},
		{
			name:    "business user",
			session: Session{Token: "tok", Profile: profileWith(true, false)},
			want:    RoleBusiness,
		},
		{
			name:    "admin",
			session: Session{Token: "tok", Profile: profileWith(false, true)},
			want:    RoleAdmin,
		},
		{
			name:    "admin wins over business",
			session: Session{Token: "tok", Profile: profileWith(true, true)},
			want:    RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveRole(tt.session))
		})
	}
}

func TestSessionPredicates(t *testing.T) {
	var zero Session
	assert.False(t, zero.HasToken())
	assert.False(t, zero.HasProfile())
	assert.True(t, zero.IsGuest())

	tokenOnly := Session{Token: "tok"}
	assert.True(t, tokenOnly.HasToken())
	assert.False(t, tokenOnly.HasProfile())
	assert.True(t, tokenOnly.IsGuest())

	full := Session{Token: "tok", Profile: profileWith(false, false)}
	assert.True(t, full.HasToken())
	assert.True(t, full.HasProfile())
	assert.False(t, full.IsGuest())
}
