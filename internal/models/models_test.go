package models

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

func TestSolveRequestValidation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		problem string
		want    string
		valid   bool
	}{
		{"Plain", "2+2", "2+2", true},
		{"Padded", "  x^2 = 4 \n", "x^2 = 4", true},
		{"Empty", "", "", false},
		{"Whitespace", "   \t\n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &SolveRequest{Problem: tt.problem}
			req.Normalize()

			if req.Problem != tt.want {
				t.Errorf("Normalize() = %q, want %q", req.Problem, tt.want)
			}

			err := validate.Struct(req)
			if tt.valid && err != nil {
				t.Errorf("Expected valid request, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestSolutionToResponse(t *testing.T) {
	solution := &Solution{
		Problem:         "2+2",
		Text:            "4",
		ModelLabel:      "YaSentAI (GPT-4o-mini)",
		CompletionModel: "gpt-4o-mini",
	}

	resp := solution.ToResponse("req-123")

	if resp.Problem != "2+2" || resp.Solution != "4" {
		t.Errorf("Unexpected response content: %+v", resp)
	}
	if resp.Model != "YaSentAI (GPT-4o-mini)" {
		t.Errorf("Expected model label, got %q", resp.Model)
	}
	if resp.Timestamp != "req-123" {
		t.Errorf("Expected request id as timestamp, got %q", resp.Timestamp)
	}
}

func TestNewHealthCheck(t *testing.T) {
	started := time.Now().Add(-90 * time.Second)

	health := NewHealthCheck("math-solver-api", "1.0.0", started)

	if health.Status != "healthy" {
		t.Errorf("Expected healthy status, got %q", health.Status)
	}
	if health.Service != "math-solver-api" || health.Version != "1.0.0" {
		t.Errorf("Unexpected service info: %+v", health)
	}
	if health.Uptime != "1m30s" {
		t.Errorf("Expected uptime 1m30s, got %q", health.Uptime)
	}
}
