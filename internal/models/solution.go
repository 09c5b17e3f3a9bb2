package models

import (
	"strings"
)

// SolveRequest is the body accepted by the solve endpoint
type SolveRequest struct {
	Problem string `json:"problem" validate:"required"`
}

// Normalize trims surrounding whitespace from the problem text
func (r *SolveRequest) Normalize() {
	r.Problem = strings.TrimSpace(r.Problem)
}

// SolveResponse is returned when a solution was generated.
// Field order is the order keys appear in the encoded body.
type SolveResponse struct {
	Problem   string `json:"problem"`
	Solution  string `json:"solution"`
	Model     string `json:"model"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenUsage reports how many tokens a completion consumed
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Solution is the outcome of solving one problem
type Solution struct {
	Problem         string     `json:"problem"`
	Text            string     `json:"text"`
	ModelLabel      string     `json:"model_label"`
	CompletionModel string     `json:"completion_model"`
	FinishReason    string     `json:"finish_reason"`
	Usage           TokenUsage `json:"usage"`
}

// ToResponse builds the response body for a solution.
// requestID comes from the invocation context.
func (s *Solution) ToResponse(requestID string) *SolveResponse {
	return &SolveResponse{
		Problem:   s.Problem,
		Solution:  s.Text,
		Model:     s.ModelLabel,
		Timestamp: requestID,
	}
}
