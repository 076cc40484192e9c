// Package client is a typed wrapper around the Talkam Liberia REST API. All
// business logic (verification scoring, alert fan-out, media processing)
// lives server-side; this package only shapes requests, attaches the bearer
// token and normalizes error bodies.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/QuaresmaHarygens/Talkam/models"
)

const defaultTimeout = 30 * time.Second

// TokenStore persists the bearer token between calls. The zero-dependency
// in-memory implementation is used unless a durable one (see the session
// package) is injected.
type TokenStore interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

type memoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (m *memoryTokenStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memoryTokenStore) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryTokenStore) Clear() error {
	return m.SetToken("")
}

// APIError carries the HTTP status and the server-supplied detail message
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// Client calls the remote Talkam API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithTokenStore injects a durable token store
func WithTokenStore(s TokenStore) Option {
	return func(c *Client) { c.tokens = s }
}

// New creates a Client for the given API base URL, e.g.
// "https://api.talkam.lr/v1"
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		tokens:     &memoryTokenStore{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the current bearer token, or "" when unauthenticated
func (c *Client) Token() string {
	return c.tokens.Token()
}

// SetToken stores a bearer token for subsequent requests
func (c *Client) SetToken(token string) error {
	return c.tokens.SetToken(token)
}

// Logout clears the persisted bearer token
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// do performs one JSON round trip. A non-2xx response is translated into an
// *APIError carrying the server's detail message, falling back to the
// message field and finally the HTTP status text.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var detail models.ErrorDetail
	if err := json.Unmarshal(raw, &detail); err == nil {
		switch {
		case detail.Detail != "":
			apiErr.Detail = detail.Detail
		case detail.Message != "":
			apiErr.Detail = detail.Message
		}
	}
	if apiErr.Detail == "" {
		apiErr.Detail = "HTTP " + resp.Status
	}
	return apiErr
}
