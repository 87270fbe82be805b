package autoservice

import (
	"context"
	"net/http"
	"net/url"
)

// LoginResponse is the token grant returned by POST /auth/login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
	UserID      int64  `json:"user_id"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. The login endpoint is
// the one form-urlencoded call in the API.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	out := &LoginResponse{}
	if err := c.doForm(ctx, "/auth/login", form, out, "failed to sign in"); err != nil {
		return nil, err
	}
	return out, nil
}

// Register creates a new console user. A duplicate username comes back
// as the same flat registration failure as any other rejection.
func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	body := registerRequest{Username: username, Password: password}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", body, nil, "registration failed")
}
