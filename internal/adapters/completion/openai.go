package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 4 << 20

// OpenAIClient implements Client against an OpenAI-compatible
// /chat/completions endpoint
type OpenAIClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Client = (*OpenAIClient)(nil)

// OpenAIOption configures an OpenAIClient
type OpenAIOption func(*OpenAIClient)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(httpClient *http.Client) OpenAIOption {
	return func(c *OpenAIClient) {
		c.httpClient = httpClient
	}
}

// NewOpenAIClient creates a client for the given base URL, e.g.
// https://api.openai.com/v1. The timeout bounds each call.
func NewOpenAIClient(baseURL string, timeout time.Duration, opts ...OpenAIOption) *OpenAIClient {
	c := &OpenAIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string  `json:"role"`
		Content *string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   Usage        `json:"usage"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// Complete implements Client.Complete
func (c *OpenAIClient) Complete(ctx context.Context, req *Request) (*Completion, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, NewError(KindOther, 0, "", ErrInvalidRequest)
	}
	if req.APIKey == "" {
		return nil, NewError(KindAuth, 0, "", ErrAPIKeyRequired)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, NewError(KindOther, 0, "failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, NewError(KindOther, 0, "failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewError(KindNetwork, 0, "", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, NewError(KindNetwork, 0, "failed to read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewError(KindForStatus(resp.StatusCode), resp.StatusCode, apiErrorMessage(data), ErrUnexpectedStatus)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, NewError(KindOther, 0, "failed to decode completion response", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, NewError(KindOther, 0, "", ErrEmptyCompletion)
	}

	choice := parsed.Choices[0]
	if choice.Message.Content == nil {
		return nil, NewError(KindOther, 0, "", ErrEmptyCompletion)
	}
	return &Completion{
		ID:           parsed.ID,
		Model:        parsed.Model,
		Text:         *choice.Message.Content,
		FinishReason: choice.FinishReason,
		Usage:        parsed.Usage,
	}, nil
}

// Close implements Client.Close
func (c *OpenAIClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// apiErrorMessage extracts the error message from an error body, falling
// back to the raw body text. An empty body yields "".
func apiErrorMessage(data []byte) string {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}

	text := strings.TrimSpace(string(data))
	if len(text) > 512 {
		text = text[:512]
	}
	return text
}
