package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "math_solver_requests_total",
			Help: "Total number of solve requests handled, by method and status code.",
		},
		[]string{"method", "code"},
	)
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "math_solver_request_duration_seconds",
			Help:    "Duration of solve requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
	completionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "math_solver_completions_total",
			Help: "Completion service calls, by outcome.",
		},
		[]string{"outcome"},
	)
	completionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "math_solver_completion_duration_seconds",
			Help:    "Latency of completion service calls.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "math_solver_http_requests_total",
			Help: "Requests served by the HTTP server, by route and status code.",
		},
		[]string{"route", "code"},
	)
	completionTokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "math_solver_completion_tokens_total",
			Help: "Tokens consumed by successful completions, by type.",
		},
		[]string{"type"},
	)
)

// OutcomeSuccess labels a completion call that returned text
const OutcomeSuccess = "success"

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, completionsTotal, completionDuration, completionTokens, httpRequestsTotal)
}

// ObserveRequest records one handled request
func ObserveRequest(method string, statusCode int, duration time.Duration) {
	requestsTotal.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	requestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// ObserveHTTP records one request served by the HTTP server. route is the
// matched route pattern, not the raw path.
func ObserveHTTP(route string, statusCode int) {
	httpRequestsTotal.WithLabelValues(route, strconv.Itoa(statusCode)).Inc()
}

// ObserveCompletion records one completion call. outcome is OutcomeSuccess
// or the failure kind.
func ObserveCompletion(outcome string, duration time.Duration) {
	completionsTotal.WithLabelValues(outcome).Inc()
	completionDuration.Observe(duration.Seconds())
}

// ObserveTokens records token usage of a successful completion
func ObserveTokens(prompt, completion int) {
	completionTokens.WithLabelValues("prompt").Add(float64(prompt))
	completionTokens.WithLabelValues("completion").Add(float64(completion))
}

// Handler returns the Prometheus metrics endpoint handler
func Handler() http.Handler {
	return promhttp.Handler()
}
