// errors.go
// ---------
// Every failed call surfaces as exactly one of three kinds so callers can
// branch with errors.As: *TransportError (the request never completed),
// *APIError (the Service answered non-2xx), *DecodeError (a 2xx body did
// not match the expected shape). None are recovered internally, and a
// failed call never returns a partially populated response.
package parsek

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidRequest marks requests rejected client-side before any HTTP
// call was made.
var ErrInvalidRequest = errors.New("parsek: invalid request")

// TransportError reports a network-level failure: timeout, connection
// refused, DNS, or a cancelled context. The original error from the HTTP
// client is preserved and reachable through Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "parsek: transport failure: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports a non-2xx response from the Service.
type APIError struct {
	StatusCode int
	Code       string // Service error identifier, when present
	Message    string // Service error message, when present
	Body       []byte // raw response body
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("parsek: api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("parsek: api error %d", e.StatusCode)
}

// NewAPIError builds an APIError from a non-2xx response, pulling the
// Service's {error, message} fields out of the body when it is JSON. The
// raw body is retained either way.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: body}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Code = payload.Error
		apiErr.Message = payload.Message
	}
	return apiErr
}

// DecodeError reports a 2xx response whose body could not be parsed into
// the expected response shape.
type DecodeError struct {
	Err  error
	Body []byte // raw response body
}

func (e *DecodeError) Error() string {
	return "parsek: decoding failure: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
