// Package mocks provides mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockUsers := mocks.NewMockUsersGateway(ctrl)
//	mockUsers.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("token", nil)
package mocks

// Generate mock for UsersGateway interface from internal/ports package.
// This creates MockUsersGateway with methods for all UsersGateway interface methods:
// Register, Login, GetByID, Update, ToggleBusiness, Delete, List
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=users_gateway_mock.go github.com/jersab/Poject-BizCardHub/internal/ports UsersGateway

// Generate mock for CardsGateway interface from internal/ports package.
// This creates MockCardsGateway with methods for all CardsGateway interface methods:
// List, GetByID, MyCards, Create, Update, ToggleLike, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cards_gateway_mock.go github.com/jersab/Poject-BizCardHub/internal/ports CardsGateway

// Generate mock for SessionStore interface from internal/ports package.
// This creates MockSessionStore with methods for all SessionStore interface methods:
// Save, Get, SetProfile, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/jersab/Poject-BizCardHub/internal/ports SessionStore

// Generate mock for TokenDecoder interface from internal/ports package.
// This creates MockTokenDecoder with methods for all TokenDecoder interface methods:
// Decode
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=token_decoder_mock.go github.com/jersab/Poject-BizCardHub/internal/ports TokenDecoder
