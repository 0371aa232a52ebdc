package bcardapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jersab/Poject-BizCardHub/internal/domain/model"
	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
)

// UsersClient talks to the remote users service.
type UsersClient struct {
	client
}

var _ ports.UsersGateway = (*UsersClient)(nil)

// NewUsersClient creates a users service client. Pass a nil http.Client to
// use a default with a request timeout.
func NewUsersClient(baseURL string, hc *http.Client) *UsersClient {
	return &UsersClient{client: newClient(baseURL, hc)}
}

func (c *UsersClient) Register(ctx context.Context, user model.User) (model.User, error) {
	var created model.User
	if err := c.doJSON(ctx, http.MethodPost, "/users", "", user, &created); err != nil {
		return model.User{}, err
	}
	return created, nil
}

// Login exchanges credentials for a bearer token. The service replies with
// the token as a bare string body.
func (c *UsersClient) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	body, err := c.doRaw(ctx, http.MethodPost, "/users/login", "", payload)
	if err != nil {
		return "", err
	}

	token := strings.Trim(strings.TrimSpace(string(body)), `"`)
	if token == "" {
		return "", apperrors.Decode("login response contained no token")
	}
	return token, nil
}

func (c *UsersClient) GetByID(ctx context.Context, token, id string) (model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(id), token, nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (c *UsersClient) Update(ctx context.Context, token, id string, upd model.UserUpdate) (model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodPut, "/users/"+url.PathEscape(id), token, upd, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (c *UsersClient) ToggleBusiness(ctx context.Context, token, id string) (model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodPatch, "/users/"+url.PathEscape(id), token, nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (c *UsersClient) Delete(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), token, nil, nil)
}

func (c *UsersClient) List(ctx context.Context, token string) ([]model.User, error) {
	var users []model.User
	if err := c.doJSON(ctx, http.MethodGet, "/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
