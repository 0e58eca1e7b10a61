package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

const defaultBaseURL = "http://localhost:8080"

// RequestError carries everything a caller needs to react to a failed
// request: the HTTP status, a human-readable message and the parsed payload
// for callers that branch on the body.
type RequestError struct {
	Status  int
	Message string
	Payload map[string]any
}

func (e *RequestError) Error() string {
	return e.Message
}

// Transport issues JSON requests against the shopping-list API.
type Transport struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional transport behavior.
type Option func(*Transport)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(t *Transport) {
		if client != nil {
			t.httpClient = client
		}
	}
}

// NewTransport builds a transport rooted at baseURL.
func NewTransport(baseURL string, opts ...Option) *Transport {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}

	t := &Transport{
		baseURL: strings.TrimRight(trimmed, "/"),
		// Deliberately no client timeout; callers cancel through ctx.
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Do executes one request. The JSON content-type header is set only when a
// body is present. The response body is parsed only when the server declares
// JSON; an unparseable body degrades to a nil payload rather than an error.
// Non-2xx statuses return a *RequestError.
func (t *Transport) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw := parseJSONBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newRequestError(resp.StatusCode, raw)
	}
	return raw, nil
}

// parseJSONBody reads the body when the content type declares JSON. Anything
// else, including malformed JSON, yields nil.
func parseJSONBody(resp *http.Response) json.RawMessage {
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || !strings.Contains(mediaType, "json") {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil || !json.Valid(data) {
		return nil
	}
	return json.RawMessage(data)
}

func newRequestError(status int, raw json.RawMessage) *RequestError {
	var payload map[string]any
	if raw != nil {
		_ = json.Unmarshal(raw, &payload)
	}

	message := fmt.Sprintf("Request failed (%d)", status)
	if m, ok := payload["message"].(string); ok && m != "" {
		message = m
	} else if m, ok := payload["error"].(string); ok && m != "" {
		message = m
	}

	return &RequestError{
		Status:  status,
		Message: message,
		Payload: payload,
	}
}
