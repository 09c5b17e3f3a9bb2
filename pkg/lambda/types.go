package lambda

import "context"

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method    string            `json:"method"`
	Path      string            `json:"path"`
	Headers   map[string]string `json:"headers"`
	Body      []byte            `json:"body"`
	RequestID string            `json:"request_id"`

	// BodyErr is set when the transport could not decode the body
	BodyErr error `json:"-"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler. It always produces a
// response; failures are encoded in the status code and body.
type HandlerFunc func(ctx context.Context, req *Request) *Response

// Header returns a response header, or "" when it is not set
func (r *Response) Header(key string) string {
	if r == nil || r.Headers == nil {
		return ""
	}
	return r.Headers[key]
}
