// transport.go
// ------------
// The transport binding: one *http.Client configured at construction, plus
// the base address and default headers applied to every outgoing request.
// Endpoint methods hand it (method, path, body) and get back either a typed
// result or one of the classified failures from errors.go.
package parsek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// httpDoer is the seam between the transport and the underlying HTTP
// client. *http.Client satisfies it; tests may substitute their own.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type transport struct {
	baseURL string
	apiKey  string
	headers map[string]string
	httpc   httpDoer
	logger  zerolog.Logger
}

// do issues one HTTP request and returns the raw status code and body.
// Default headers are applied after caller-supplied ones, so Authorization
// and Content-Type cannot be overridden.
func (t *transport) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("parsek: encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("parsek: build request: %w", err)
	}
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := t.httpc.Do(req)
	if err != nil {
		t.logger.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return 0, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Err: err}
	}

	t.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request complete")

	return resp.StatusCode, data, nil
}

// call performs do and maps the result per the error taxonomy: a non-2xx
// status becomes *APIError, an unparseable 2xx body becomes *DecodeError.
func (t *transport) call(ctx context.Context, method, path string, body, out any) error {
	status, data, err := t.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return NewAPIError(status, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	return nil
}
