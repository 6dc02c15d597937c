// Package platform is a minimal HTTP client for the Vapi voice-agent
// API, covering outbound call creation and call retrieval.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"callbench/internal/payload"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.vapi.ai"

	// DefaultDestinationNumber is the test line dialed when no
	// destination is configured.
	DefaultDestinationNumber = "+18054398008"
)

// Client calls the Vapi REST API.
type Client struct {
	apiKey        string
	phoneNumberID string
	baseURL       string
	httpClient    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient returns a client authenticated with apiKey that places
// calls from the platform phone number phoneNumberID.
func NewClient(apiKey, phoneNumberID string, opts ...Option) *Client {
	c := &Client{
		apiKey:        apiKey,
		phoneNumberID: phoneNumberID,
		baseURL:       DefaultBaseURL,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartCallRequest describes one outbound call to place.
type StartCallRequest struct {
	// DestinationNumber is the E.164 number to dial. Empty selects
	// DefaultDestinationNumber.
	DestinationNumber string

	SystemPrompt     string
	FirstMessage     string
	FirstMessageMode string

	// WebhookBaseURL, when set, is registered on the transient
	// assistant so the platform delivers end-of-call reports to
	// <base>/webhook/vapi.
	WebhookBaseURL string
}

// Call is the subset of the platform's call object the pipeline needs.
// Raw retains the full response for fields the typed view drops.
type Call struct {
	ID     string `mapstructure:"id"`
	Status string `mapstructure:"status"`

	Raw map[string]any `mapstructure:"-"`
}

// adaptCall lifts the fields we rely on out of a raw API response
// while keeping the response itself attached.
func adaptCall(raw map[string]any) (*Call, error) {
	var call Call
	if err := mapstructure.Decode(raw, &call); err != nil {
		return nil, fmt.Errorf("decoding call object: %w", err)
	}
	call.Raw = raw
	return &call, nil
}

// RecordingURL returns the first populated recording URL field on the
// call object, checked in the same priority order the webhook
// normalizer uses.
func (c *Call) RecordingURL() string {
	return payload.FirstString(c.Raw, payload.RecordingURLPaths("", "artifact")...)
}

// APIError is a non-2xx response from the platform.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform API error: status %d: %s", e.StatusCode, e.Body)
}

// StartCall places an outbound call with a transient assistant built
// from the request's prompt and returns the created call.
func (c *Client) StartCall(ctx context.Context, req StartCallRequest) (*Call, error) {
	dest := req.DestinationNumber
	if dest == "" {
		dest = DefaultDestinationNumber
	}

	body := map[string]any{
		"phoneNumberId": c.phoneNumberID,
		"customer":      map[string]any{"number": dest},
		"assistant":     buildAssistant(req),
	}

	raw, err := c.do(ctx, http.MethodPost, "/call", body)
	if err != nil {
		return nil, err
	}
	return adaptCall(raw)
}

// GetCall fetches a call by id.
func (c *Client) GetCall(ctx context.Context, callID string) (*Call, error) {
	raw, err := c.do(ctx, http.MethodGet, "/call/"+callID, nil)
	if err != nil {
		return nil, err
	}
	return adaptCall(raw)
}

// RecordingURL fetches a call and resolves its recording URL. Returns
// "" without error when the recording is not available yet.
func (c *Client) RecordingURL(ctx context.Context, callID string) (string, error) {
	call, err := c.GetCall(ctx, callID)
	if err != nil {
		return "", err
	}
	return call.RecordingURL(), nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return raw, nil
}
