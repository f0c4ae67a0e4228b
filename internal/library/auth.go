package library

import (
	"context"
	"fmt"
	"net/http"
)

// ObtainToken exchanges credentials for a token pair via POST /api/token/.
// Rejected credentials (any non-2xx) yield (nil, nil).
func (c *Client) ObtainToken(ctx context.Context, username, password string) (*TokenPair, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	payload := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var pair TokenPair
	status, err := c.do(ctx, http.MethodPost, "/api/token/", payload, &pair)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &pair, nil
}

// InvalidateSession tells the backend to drop the current session. The call
// is best effort; the local credential is destroyed regardless.
func (c *Client) InvalidateSession(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	_, err := c.do(ctx, http.MethodPost, "/api/logout/", nil, nil)
	return err
}

// CurrentUser resolves the identity behind the held credential via
// GET /api/users/me/. An unauthenticated or expired credential yields
// (nil, nil).
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var user User
	status, err := c.do(ctx, http.MethodGet, "/api/users/me/", nil, &user)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &user, nil
}

// RegisterUser submits a new-user payload to POST /api/register/.
// A rejected registration (duplicate username, weak password) yields
// (nil, nil).
func (c *Client) RegisterUser(ctx context.Context, profile RegisterProfile) (*User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var user User
	status, err := c.do(ctx, http.MethodPost, "/api/register/", profile, &user)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, nil
	}
	return &user, nil
}
