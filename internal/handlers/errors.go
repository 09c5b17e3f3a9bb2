package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"math-solver-api/internal/models"
	"math-solver-api/pkg/lambda"
)

// Messages returned in the error field of failed requests
const (
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidJSON      = "Invalid JSON"
	msgProblemRequired  = "Problem description is required"
	msgServerError      = "Server error: "
)

// corsHeaders returns the headers sent with every JSON response
func corsHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// preflightResponse answers a CORS preflight request
func preflightResponse() *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "POST, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type",
			"Access-Control-Max-Age":       "86400",
		},
		Body: []byte{},
	}
}

// errorResponse builds a JSON error response with the given status
func errorResponse(statusCode int, message string) *lambda.Response {
	return jsonResponse(statusCode, models.ErrorResponse{Error: message})
}

// jsonResponse encodes v as the response body. Non-ASCII text is written
// as UTF-8, not as \u escapes.
func jsonResponse(statusCode int, v interface{}) *lambda.Response {
	body, err := encodeJSON(v)
	if err != nil {
		statusCode = http.StatusInternalServerError
		body, _ = encodeJSON(models.ErrorResponse{Error: msgServerError + err.Error()})
	}

	return &lambda.Response{
		StatusCode: statusCode,
		Headers:    corsHeaders(),
		Body:       body,
	}
}

func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
