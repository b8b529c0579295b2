package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/troski/troski/internal/pkg/jwt"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
)

const (
	// DefaultTimeout for upstream requests
	DefaultTimeout = 30 * time.Second

	defaultRefreshPath = "/auth/refresh-token"
	defaultSignInPath  = "/signin"
)

// TokenStore holds the bearer tokens of the caller found in the context
type TokenStore interface {
	AccessToken(ctx context.Context) string
	RefreshToken(ctx context.Context) string
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
	Clear(ctx context.Context) error
}

// ErrorHook receives every failure except unauthorized ones, which redirect instead
type ErrorHook func(ctx context.Context, err *APIError)

// Config configures the upstream API client
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	RefreshPath string
	SignInPath  string
}

// ConfigFromModel builds a client config from the application config
func ConfigFromModel(cfg models.APIConfig) Config {
	return Config{
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout,
		RefreshPath: cfg.RefreshPath,
		SignInPath:  cfg.SignInPath,
	}
}

// Client talks JSON to the upstream REST API. It attaches the session's bearer token
// and, on a 401, refreshes the token once and replays the request once.
type Client struct {
	baseURL     string
	refreshPath string
	signInPath  string
	httpClient  *nethttp.Client
	tokens      TokenStore
	onError     ErrorHook
	now         func() time.Time
}

// NewClient creates a new API client
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.RefreshPath == "" {
		config.RefreshPath = defaultRefreshPath
	}
	if config.SignInPath == "" {
		config.SignInPath = defaultSignInPath
	}

	return &Client{
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		refreshPath: config.RefreshPath,
		signInPath:  config.SignInPath,
		httpClient: &nethttp.Client{
			Timeout: config.Timeout,
		},
		now: time.Now,
	}
}

// WithTokenStore sets where bearer tokens are read from and refreshed into
func (c *Client) WithTokenStore(tokens TokenStore) *Client {
	c.tokens = tokens
	return c
}

// WithErrorHook sets the callback notified of failed calls
func (c *Client) WithErrorHook(hook ErrorHook) *Client {
	c.onError = hook
	return c
}

// Get performs a GET request and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, nethttp.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, nethttp.MethodPost, path, body, out)
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, nethttp.MethodPut, path, body, out)
}

// Patch performs a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, nethttp.MethodPatch, path, body, out)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, nethttp.MethodDelete, path, nil, out)
}

// Do sends the request. Every upstream failure, including an undecodable response, is an
// *APIError; only a request body that cannot be encoded returns a plain error.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	retried := false
	if c.tokens != nil {
		if token := c.tokens.AccessToken(ctx); token != "" && jwt.IsExpired(token, c.now()) {
			// an expired token spends the single refresh before the first attempt
			retried = true
			if err := c.refresh(ctx); err != nil {
				return c.unauthorized(ctx, err)
			}
		}
	}

	return c.send(ctx, method, path, payload, out, retried)
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, out interface{}, retried bool) error {
	status, data, err := c.roundTrip(ctx, method, path, payload, true)
	if err != nil {
		return c.fail(ctx, &APIError{Kind: KindNetwork, Message: MessageNetwork, Err: err})
	}

	if status == nethttp.StatusUnauthorized {
		if !retried && c.tokens != nil && c.tokens.RefreshToken(ctx) != "" {
			if err := c.refresh(ctx); err == nil {
				logger.DebugCtx(ctx, "Retrying request after token refresh",
					logger.String("method", method),
					logger.String("path", path))
				return c.send(ctx, method, path, payload, out, true)
			}
		}
		return c.unauthorized(ctx, errorFromResponse(status, data))
	}

	if status >= 400 {
		return c.fail(ctx, errorFromResponse(status, data))
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return c.fail(ctx, &APIError{
				Kind:    KindServer,
				Status:  status,
				Message: MessageServer,
				Err:     fmt.Errorf("failed to decode response: %w", err),
			})
		}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, withAuth bool) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if withAuth && c.tokens != nil {
		if token := c.tokens.AccessToken(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, data, nil
}

type refreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// refresh exchanges the refresh token for a new pair
func (c *Client) refresh(ctx context.Context) error {
	refreshToken := c.tokens.RefreshToken(ctx)
	if refreshToken == "" {
		return fmt.Errorf("no refresh token")
	}

	payload, err := json.Marshal(models.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}

	status, data, err := c.roundTrip(ctx, nethttp.MethodPost, c.refreshPath, payload, false)
	if err != nil {
		return fmt.Errorf("refresh request failed: %w", err)
	}
	if status != nethttp.StatusOK && status != nethttp.StatusCreated {
		return fmt.Errorf("refresh rejected with status %d", status)
	}

	var tokens refreshResponse
	if err := json.Unmarshal(data, &tokens); err != nil || tokens.Token == "" {
		return fmt.Errorf("invalid refresh response")
	}

	return c.tokens.SetTokens(ctx, tokens.Token, tokens.RefreshToken)
}

// unauthorized clears the session and points the caller at the sign-in page
func (c *Client) unauthorized(ctx context.Context, cause error) *APIError {
	if c.tokens != nil {
		if err := c.tokens.Clear(ctx); err != nil {
			logger.WarnCtx(ctx, "Failed to clear session tokens", logger.Err(err))
		}
	}

	apiErr := &APIError{
		Kind:     KindUnauthorized,
		Status:   nethttp.StatusUnauthorized,
		Message:  MessageUnauthorized,
		Redirect: c.signInPath,
	}
	if upstream, ok := cause.(*APIError); ok {
		apiErr.Message = upstream.Message
	} else {
		apiErr.Err = cause
	}
	return apiErr
}

func (c *Client) fail(ctx context.Context, apiErr *APIError) *APIError {
	logger.WarnCtx(ctx, "Upstream request failed",
		logger.String("kind", string(apiErr.Kind)),
		logger.Int("status", apiErr.Status),
		logger.String("message", apiErr.Message))

	if c.onError != nil {
		c.onError(ctx, apiErr)
	}
	return apiErr
}
