// client.go
// ---------
// The client.go file contains the core Client struct and its methods.
// This is the main entry point of the SDK for users.
//
// Key functionalities include:
// - Constructing a client with NewClient() and functional options
// - Running extractions via Extract()
// - Executing published apps via RunAppJSON()
// - Reading the account balance via GetCredits()
//
// The Client owns a single transport binding for its lifetime. Construction
// performs no network I/O and does not validate the API key; an empty or
// wrong key surfaces as a 401 *APIError on the first call.
package parsek

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the Parsek API. It is immutable after construction and
// safe for concurrent use.
type Client struct {
	config    ClientConfig
	logger    zerolog.Logger
	httpc     httpDoer
	transport *transport
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithBaseURL overrides the default API origin.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.config.BaseURL = strings.TrimRight(baseURL, "/") }
}

// WithTimeout overrides the default 30s request timeout. It has no effect
// when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.config.Timeout = d }
}

// WithHTTPClient substitutes the underlying HTTP client, used as-is. The
// caller then owns transport concerns such as timeouts and pooling.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithHeader adds a default header to every request. Authorization cannot
// be overridden this way.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.config.Headers[key] = value }
}

// WithLogger enables debug logging of request method, path, status and
// duration. The API key is never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient builds a Client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		config: ClientConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
			Headers: make(map[string]string),
		},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpc == nil {
		c.httpc = &http.Client{Timeout: c.config.Timeout}
	}
	c.transport = &transport{
		baseURL: c.config.BaseURL,
		apiKey:  apiKey,
		headers: c.config.Headers,
		httpc:   c.httpc,
		logger:  c.logger,
	}
	return c
}

// Config returns the resolved configuration the client was built with.
func (c *Client) Config() ClientConfig { return c.config }

// Extract runs AI-driven extraction over the request's sources and returns
// the extracted payload. The schema, when supplied, is forwarded to the
// Service unmodified and determines the shape of the response data.
func (c *Client) Extract(ctx context.Context, req *ExtractRequest) (*ExtractResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	body := extractBody{
		Type:   req.SourceKind,
		Data:   req.Sources,
		Prompt: req.Prompt,
		Schema: req.Schema,
	}
	var out ExtractResponse
	if err := c.transport.call(ctx, http.MethodPost, "/v1/extract", &body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RunAppJSON executes a published app and returns its JSON result. Input
// values keep the types they were given; the SDK does not coerce them.
func (c *Client) RunAppJSON(ctx context.Context, req *RunAppRequest) (*RunAppResponse, error) {
	var out RunAppResponse
	if err := c.transport.call(ctx, http.MethodPost, "/v1/apps/run/json", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCredits reports the account's remaining credit balance.
func (c *Client) GetCredits(ctx context.Context) (CreditsResponse, error) {
	var out CreditsResponse
	if err := c.transport.call(ctx, http.MethodGet, "/v1/credits", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
