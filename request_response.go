// request_response.go
// -------------------
// Typed request and response values for the Parsek endpoints. Payloads
// whose shape depends on a caller-supplied schema (the extract data field,
// the credit balance object) stay opaque at this layer; callers narrow them
// with the schema they supplied.
package parsek

import "fmt"

// SourceKind selects how the entries of ExtractRequest.Sources are
// interpreted by the Service.
type SourceKind string

const (
	// SourceURL marks sources as URLs for the Service to fetch.
	SourceURL SourceKind = "url"
	// SourceText marks sources as raw text or HTML supplied inline.
	SourceText SourceKind = "text"
)

const (
	maxSources   = 20
	maxPromptLen = 2000
)

// ExtractRequest describes one extraction call. Sources must hold 1 to 20
// entries; Prompt is limited to 2000 characters. Schema, when set, is
// passed through to the Service unmodified.
type ExtractRequest struct {
	SourceKind SourceKind
	Sources    []string
	Prompt     string
	Schema     map[string]any
}

// NewExtractURLRequest builds an ExtractRequest over URL sources.
func NewExtractURLRequest(urls []string, prompt string) *ExtractRequest {
	return &ExtractRequest{SourceKind: SourceURL, Sources: urls, Prompt: prompt}
}

// NewExtractTextRequest builds an ExtractRequest over raw text or HTML.
func NewExtractTextRequest(texts []string, prompt string) *ExtractRequest {
	return &ExtractRequest{SourceKind: SourceText, Sources: texts, Prompt: prompt}
}

func (r *ExtractRequest) validate() error {
	if len(r.Sources) == 0 {
		return fmt.Errorf("%w: at least one source required", ErrInvalidRequest)
	}
	if len(r.Sources) > maxSources {
		return fmt.Errorf("%w: at most %d sources per request, got %d", ErrInvalidRequest, maxSources, len(r.Sources))
	}
	if len(r.Prompt) > maxPromptLen {
		return fmt.Errorf("%w: prompt exceeds %d characters", ErrInvalidRequest, maxPromptLen)
	}
	return nil
}

// extractBody is the wire envelope for POST /v1/extract. Absent prompt and
// schema keys are omitted entirely, not sent as null.
type extractBody struct {
	Type   SourceKind     `json:"type"`
	Data   []string       `json:"data"`
	Prompt string         `json:"prompt,omitempty"`
	Schema map[string]any `json:"schema,omitempty"`
}

// ExtractResponse is the result of an extraction. Data follows the schema
// supplied in the request, or is auto-inferred by the Service when no
// schema was given; the SDK does not assume any particular shape.
type ExtractResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// AppInput is one key/value input to a published app. Value must be a
// primitive scalar (string, number, or bool) and is serialized as given.
type AppInput struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// RunAppRequest identifies a published app and its inputs. Inputs are
// passed through to the Service verbatim.
type RunAppRequest struct {
	AppID  string     `json:"appId"`
	Inputs []AppInput `json:"inputs"`
}

// AppRunData is the tabular payload of a successful app run. Each row is
// aligned to Columns by position.
type AppRunData struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// RunAppResponse is the result of an app run. Data, RunID, ElapsedTime and
// Error are optional; ElapsedTime is in milliseconds.
type RunAppResponse struct {
	Success     bool        `json:"success"`
	Data        *AppRunData `json:"data,omitempty"`
	RunID       string      `json:"runId,omitempty"`
	ElapsedTime float64     `json:"elapsedTime,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// CreditsResponse is the Service-defined account balance payload.
type CreditsResponse map[string]any
