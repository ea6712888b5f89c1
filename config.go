// config.go
// ----------
// This file defines the ClientConfig structure and the SDK defaults. A
// ClientConfig is resolved once inside NewClient from the defaults plus any
// functional options, and is immutable for the lifetime of the Client.
package parsek

import "time"

const (
	// DefaultBaseURL is the production Parsek API origin.
	DefaultBaseURL = "https://api.parsek.ai"

	// DefaultTimeout bounds every request issued by the client unless
	// overridden with WithTimeout or WithHTTPClient.
	DefaultTimeout = 30 * time.Second
)

// ClientConfig holds the resolved settings a Client was constructed with.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration

	// Headers are extra default headers merged into every request. The
	// Authorization header cannot be set this way.
	Headers map[string]string
}
