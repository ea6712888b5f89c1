// finauth.go
// ----------
// Package finauth issues OAuth2 client-credential access tokens for the
// Parsek financial-data API. The token endpoint lives on its own origin
// with distinct mock and live variants and authenticates with an app
// key/secret pair instead of the bearer key used by the main API, so it
// gets its own small client.
//
// Token caching and refresh are the caller's responsibility; each
// IssueAccessToken call performs exactly one exchange. See TokenSource for
// plugging issued tokens into oauth2-aware stacks.
package finauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	parsek "github.com/parsek-ai/parsek-go"
	"github.com/parsek-ai/parsek-go/internal"
)

const (
	// LiveBaseURL is the production token endpoint origin.
	LiveBaseURL = "https://openapi.parsekfin.com"
	// MockBaseURL is the sandbox token endpoint origin.
	MockBaseURL = "https://openapi-mock.parsekfin.com"

	// DefaultTimeout bounds every token exchange.
	DefaultTimeout = 30 * time.Second

	tokenPath = "/oauth2/token"
)

// Config selects the endpoint variant and credentials for token issuance.
type Config struct {
	AppKey    string
	AppSecret string

	// Mock routes the exchange to the sandbox endpoint instead of live.
	Mock bool

	// BaseURL overrides the origin entirely; it wins over Mock when set.
	BaseURL string

	// Timeout defaults to 30s when zero.
	Timeout time.Duration
}

// Client issues access tokens. It is immutable after construction and safe
// for concurrent use.
type Client struct {
	config  Config
	baseURL string
	httpc   *http.Client
	logger  zerolog.Logger
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client, used as-is.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithLogger enables debug logging of the exchange. Neither the app secret
// nor issued tokens are logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient builds a token client. Construction performs no network I/O;
// bad credentials surface as a *parsek.APIError on the first exchange.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		config:  cfg,
		baseURL: resolveBaseURL(cfg),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		c.httpc = &http.Client{Timeout: timeout}
	}
	return c
}

func resolveBaseURL(cfg Config) string {
	if cfg.BaseURL != "" {
		return strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Mock {
		return MockBaseURL
	}
	return LiveBaseURL
}

// tokenBody is the wire envelope for the token exchange.
type tokenBody struct {
	GrantType string `json:"grant_type"`
	AppKey    string `json:"appkey"`
	SecretKey string `json:"secretkey"`
}

// TokenResponse is an issued access token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	// ExpiresAt is the Service's wall-clock expiry, e.g. "2026-08-24 09:00:00".
	ExpiresAt string `json:"expires_dt"`
}

// Expiry parses the ExpiresAt timestamp. When the field is absent or does
// not match the Service layout, it falls back to the exp claim of a
// JWT-shaped token.
func (r *TokenResponse) Expiry() (time.Time, error) {
	if r.ExpiresAt != "" {
		if t, err := internal.ParseServiceTime(r.ExpiresAt); err == nil {
			return t, nil
		}
	}
	return TokenExpiry(r.Token)
}

// Valid reports whether the token's expiry is known and still in the
// future. An unparseable expiry reports false.
func (r *TokenResponse) Valid() bool {
	exp, err := r.Expiry()
	if err != nil {
		return false
	}
	return internal.IsInFuture(exp)
}

// IssueAccessToken performs one client-credentials exchange against the
// configured endpoint. Failures follow the parsek error taxonomy:
// *parsek.TransportError, *parsek.APIError, or *parsek.DecodeError.
func (c *Client) IssueAccessToken(ctx context.Context) (*TokenResponse, error) {
	body := tokenBody{
		GrantType: "client_credentials",
		AppKey:    c.config.AppKey,
		SecretKey: c.config.AppSecret,
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("finauth: encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("finauth: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Msg("token exchange failed")
		return nil, &parsek.TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &parsek.TransportError{Err: err}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Bool("mock", c.config.Mock).
		Msg("token exchange complete")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parsek.NewAPIError(resp.StatusCode, data)
	}

	var out TokenResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &parsek.DecodeError{Err: err, Body: data}
	}
	return &out, nil
}
