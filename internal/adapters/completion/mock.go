package completion

import (
	"context"
	"sync"
)

// MockClient is an in-memory implementation of Client for testing and
// offline development
type MockClient struct {
	mu       sync.Mutex
	text     string
	err      error
	requests []Request
	closed   bool
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a MockClient that answers every call with text
func NewMockClient(text string) *MockClient {
	return &MockClient{text: text}
}

// NewFailingMockClient creates a MockClient that fails every call with err
func NewFailingMockClient(err error) *MockClient {
	return &MockClient{err: err}
}

// Complete implements Client.Complete
func (m *MockClient) Complete(ctx context.Context, req *Request) (*Completion, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, NewError(KindOther, 0, "", ErrInvalidRequest)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *req
	copied.Messages = append([]Message(nil), req.Messages...)
	m.requests = append(m.requests, copied)

	if err := ctx.Err(); err != nil {
		return nil, NewError(KindNetwork, 0, "", err)
	}
	if m.err != nil {
		return nil, m.err
	}

	return &Completion{
		ID:           "mock-completion",
		Model:        req.Model,
		Text:         m.text,
		FinishReason: "stop",
	}, nil
}

// Requests returns a copy of every request received so far
func (m *MockClient) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}

// Calls returns the number of requests received so far
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Closed reports whether Close was called
func (m *MockClient) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Close implements Client.Close
func (m *MockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
