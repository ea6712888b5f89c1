package parsek

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIErrorParsesServicePayload(t *testing.T) {
	err := NewAPIError(401, []byte(`{"error":"unauthorized","message":"invalid API key"}`))
	assert.Equal(t, 401, err.StatusCode)
	assert.Equal(t, "unauthorized", err.Code)
	assert.Equal(t, "invalid API key", err.Message)
	assert.Equal(t, "parsek: api error 401: invalid API key", err.Error())
}

func TestNewAPIErrorKeepsRawNonJSONBody(t *testing.T) {
	err := NewAPIError(502, []byte("Bad Gateway"))
	assert.Equal(t, 502, err.StatusCode)
	assert.Empty(t, err.Code)
	assert.Empty(t, err.Message)
	assert.Equal(t, []byte("Bad Gateway"), err.Body)
	assert.Equal(t, "parsek: api error 502", err.Error())
}

func TestTransportErrorPreservesCause(t *testing.T) {
	cause := &net.DNSError{Err: "no such host", Name: "api.parsek.ai", IsNotFound: true}
	err := &TransportError{Err: cause}

	var dnsErr *net.DNSError
	assert.ErrorAs(t, err, &dnsErr)
	assert.Same(t, cause, dnsErr)
	assert.Contains(t, err.Error(), "no such host")
}

func TestDecodeErrorUnwraps(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &DecodeError{Err: cause, Body: []byte("{")}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "decoding failure")
}
