package completion

import (
	"context"
)

// Message roles understood by chat completion endpoints
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes one chat completion call
type Request struct {
	// APIKey is the bearer credential; it is never serialized
	APIKey      string    `json:"-"`
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Usage reports token accounting for a completion
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the successful result of a call
type Completion struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
	Usage        Usage  `json:"usage"`
}

// Client provides an abstraction over chat completion services.
// A failed call returns a *Error describing what went wrong.
type Client interface {
	// Complete sends the conversation and returns the first choice
	Complete(ctx context.Context, req *Request) (*Completion, error)

	// Close releases any resources held by the client
	Close() error
}
