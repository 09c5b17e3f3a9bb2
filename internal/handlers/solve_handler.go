package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"math-solver-api/internal/metrics"
	"math-solver-api/internal/middleware"
	"math-solver-api/internal/models"
	"math-solver-api/internal/services"
	"math-solver-api/pkg/lambda"
)

var (
	errRequestNotObject = errors.New("request body must be a JSON object")
	errProblemNotString = errors.New("problem must be a string")
)

// SolveHandler handles math problem requests
type SolveHandler struct {
	solverService services.SolverService
	validator     *validator.Validate
}

var _ lambda.HandlerFunc = (*SolveHandler)(nil).HandleSolve

// NewSolveHandler creates a new solve handler
func NewSolveHandler(solverService services.SolverService) *SolveHandler {
	return &SolveHandler{
		solverService: solverService,
		validator:     validator.New(),
	}
}

// HandleSolve answers one solve request. It never fails: every outcome,
// including upstream errors, is encoded in the returned response.
func (h *SolveHandler) HandleSolve(ctx context.Context, req *lambda.Request) *lambda.Response {
	start := time.Now()
	resp := h.handle(ctx, req)
	latency := time.Since(start)

	metrics.ObserveRequest(req.Method, resp.StatusCode, latency)

	fields := logrus.Fields{
		"request_id":  req.RequestID,
		"method":      req.Method,
		"status_code": resp.StatusCode,
		"latency_ms":  float64(latency.Nanoseconds()) / 1000000,
	}
	switch {
	case resp.StatusCode >= 500:
		logrus.WithFields(fields).Error("Solve request failed")
	case resp.StatusCode >= 400:
		logrus.WithFields(fields).Warn("Solve request rejected")
	default:
		logrus.WithFields(fields).Info("Solve request completed")
	}

	return resp
}

func (h *SolveHandler) handle(ctx context.Context, req *lambda.Request) *lambda.Response {
	switch req.Method {
	case http.MethodOptions:
		return preflightResponse()
	case http.MethodPost:
	default:
		return errorResponse(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}

	if req.BodyErr != nil || !json.Valid(req.Body) {
		return errorResponse(http.StatusBadRequest, msgInvalidJSON)
	}

	solveReq, err := decodeSolveRequest(req.Body)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, msgServerError+err.Error())
	}

	solveReq.Normalize()
	if err := h.validator.Struct(solveReq); err != nil {
		return errorResponse(http.StatusBadRequest, msgProblemRequired)
	}

	solution, err := h.solverService.Solve(ctx, solveReq.Problem)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProblemRequired):
			return errorResponse(http.StatusBadRequest, msgProblemRequired)
		case errors.Is(err, services.ErrAPIKeyNotConfigured):
			return errorResponse(http.StatusInternalServerError, err.Error())
		default:
			return errorResponse(http.StatusInternalServerError, msgServerError+err.Error())
		}
	}

	return jsonResponse(http.StatusOK, solution.ToResponse(req.RequestID))
}

// decodeSolveRequest reads the problem out of well-formed JSON. The body must
// be an object, and problem, when present, must be a string.
func decodeSolveRequest(body []byte) (*models.SolveRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, errRequestNotObject
	}

	solveReq := &models.SolveRequest{}
	raw, ok := fields["problem"]
	if !ok {
		return solveReq, nil
	}
	var problem *string
	if err := json.Unmarshal(raw, &problem); err != nil || problem == nil {
		return nil, errProblemNotString
	}
	solveReq.Problem = *problem
	return solveReq, nil
}

// @Summary Solve a math problem
// @Description Sends the problem to the completion service and returns a step-by-step solution in Russian
// @Tags solve
// @Accept json
// @Produce json
// @Param request body models.SolveRequest true "Problem description"
// @Success 200 {object} models.SolveResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 405 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /solve [post]
func (h *SolveHandler) Solve(c *gin.Context) {
	// An unreadable body is treated like an empty one
	body, _ := c.GetRawData()

	requestID := c.GetString(middleware.RequestIDKey)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	resp := h.HandleSolve(c.Request.Context(), &lambda.Request{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Headers:   flattenHeaders(c.Request.Header),
		Body:      body,
		RequestID: requestID,
	})

	writeResponse(c, resp)
}

// writeResponse copies a framework-agnostic response onto the gin writer
func writeResponse(c *gin.Context, resp *lambda.Response) {
	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Status(resp.StatusCode)
	if len(resp.Body) == 0 {
		c.Writer.WriteHeaderNow()
		return
	}
	_, _ = c.Writer.Write(resp.Body)
}

func flattenHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for key := range header {
		headers[key] = header.Get(key)
	}
	return headers
}
