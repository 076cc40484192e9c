package client

import (
	"context"
	"net/http"

	"github.com/QuaresmaHarygens/Talkam/models"
)

// Login exchanges phone and password for tokens. The access token is
// persisted through the token store on success.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthTokens, error) {
	var tokens models.AuthTokens
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &tokens); err != nil {
		return nil, err
	}
	if tokens.AccessToken != "" {
		if err := c.tokens.SetToken(tokens.AccessToken); err != nil {
			return nil, err
		}
	}
	return &tokens, nil
}

// Register creates an account and persists the returned access token
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthTokens, error) {
	var tokens models.AuthTokens
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &tokens); err != nil {
		return nil, err
	}
	if tokens.AccessToken != "" {
		if err := c.tokens.SetToken(tokens.AccessToken); err != nil {
			return nil, err
		}
	}
	return &tokens, nil
}

// AnonymousStart begins a guest session keyed by a stable device hash and
// persists the returned guest token
func (c *Client) AnonymousStart(ctx context.Context, req models.AnonymousStartRequest) (*models.AnonymousStartResponse, error) {
	var resp models.AnonymousStartResponse
	if err := c.do(ctx, http.MethodPost, "/auth/anonymous-start", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := c.tokens.SetToken(resp.Token); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}
