// Package api implements the HTTP client for a local Ollama server.
package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	apierrors "github.com/diogo/ollamaterm/internal/errors"
)

// DefaultTimeout bounds non-streaming requests. Streaming requests are
// bounded only by the caller's context, since generation time is open-ended.
const DefaultTimeout = 60 * time.Second

// Client talks to one Ollama server. It holds no per-conversation state:
// every call is independent, and concurrent calls are safe.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration

	mu    sync.RWMutex // protects model
	model string
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithTimeout sets the deadline applied to non-streaming requests.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Client for the server at baseURL.
// Both baseURL and model are validated here so that a misconfigured
// client fails at construction, not on first use.
func NewClient(baseURL, model string, opts ...ClientOption) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(model) == "" {
		return nil, apierrors.NewValidationError("model must not be empty")
	}

	client := &Client{
		// No http.Client timeout: it would sever streaming bodies mid-read.
		// Non-streaming deadlines are applied per request via context.
		httpClient: &http.Client{},
		baseURL:    normalized,
		model:      model,
		timeout:    DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// normalizeBaseURL validates that raw is an absolute http(s) URL and
// strips trailing slashes so paths join without duplication.
func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", apierrors.NewValidationError("base URL must not be empty")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", apierrors.NewValidationError(fmt.Sprintf("invalid base URL %q: %v", raw, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", apierrors.NewValidationError(fmt.Sprintf("base URL %q must use http or https", raw))
	}
	if u.Host == "" {
		return "", apierrors.NewValidationError(fmt.Sprintf("base URL %q has no host", raw))
	}

	return strings.TrimRight(trimmed, "/"), nil
}

// BaseURL returns the normalized server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetModel returns the model used for chat requests.
func (c *Client) GetModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// SetModel changes the model used for chat requests.
func (c *Client) SetModel(model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
}

// endpoint joins an API path onto the base URL.
func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}
