package shopapi

import (
	"context"
	"net/http"
	"net/url"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
	User
}

type RegisterResult struct {
	Message   string `json:"message"`
	EmailSent bool   `json:"emailSent"`
}

type ProfileInput struct {
	Name    string   `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &out); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

// Register creates an account; no token is issued until the email is
// verified (the auth service owns that flow).
func (c *Client) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	var out RegisterResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", in, &out); err != nil {
		return RegisterResult{}, err
	}
	return out, nil
}

func (c *Client) Profile(ctx context.Context, token string) (User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, in ProfileInput) (User, error) {
	var out User
	if err := c.do(ctx, http.MethodPut, "/auth/profile", token, in, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

func (c *Client) VerifyEmail(ctx context.Context, verifyToken string) error {
	return c.do(ctx, http.MethodGet, "/auth/verify-email/"+url.PathEscape(verifyToken), "", nil, nil)
}

func (c *Client) ResendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/resend-verification", "", body, nil)
}
