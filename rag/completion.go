package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultCompletionTimeout bounds one completion call, including connection
// setup and reading the full response body.
const DefaultCompletionTimeout = 300 * time.Second

// generatedTextKeys are the response fields known to carry the generated
// text, tried in priority order.
var generatedTextKeys = []string{"response", "generated", "result"}

// Response is the raw outcome of a completion call that reached the service.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the service answered with a success status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// GeneratedText extracts the generated text from the response body, trying
// the known field names in priority order. If none is present the whole body
// is returned so the caller still sees what the service said.
func (r *Response) GeneratedText() string {
	for _, key := range generatedTextKeys {
		if value := gjson.GetBytes(r.Body, key); value.Exists() && value.String() != "" {
			return value.String()
		}
	}
	return strings.TrimSpace(string(r.Body))
}

// CompletionClient turns a prompt into generated text via an external
// service. Implementations return an error only for transport-level
// failures; an HTTP response of any status is returned as a Response.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (*Response, error)
}

// OllamaClient is a CompletionClient for an Ollama-style generate endpoint:
// POST {model, prompt, stream:false}, JSON response with the generated text.
type OllamaClient struct {
	host       string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ CompletionClient = (*OllamaClient)(nil)

// ClientOption configures an OllamaClient.
type ClientOption func(*OllamaClient)

// WithTimeout sets the per-call timeout.
// Default is DefaultCompletionTimeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *OllamaClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *OllamaClient) {
		c.httpClient = client
	}
}

// NewOllamaClient creates a completion client for the given host and model.
// Host is the server base URL, e.g. "http://localhost:11434".
func NewOllamaClient(host, model string, opts ...ClientOption) *OllamaClient {
	c := &OllamaClient{
		host:       strings.TrimSuffix(host, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: DefaultCompletionTimeout},
		logger:     slog.Default().With("component", "completion-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// Complete implements CompletionClient. Timeouts surface as transport
// errors, like any other failure to obtain a response.
func (c *OllamaClient) Complete(ctx context.Context, prompt string) (*Response, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.host+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending completion request", "model", c.model, "promptLength", len(prompt))

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("completion request failed", "err", err)
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading completion response: %w", err)
	}

	return &Response{StatusCode: res.StatusCode, Body: body}, nil
}
