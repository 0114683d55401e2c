package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	leadsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_created_total",
			Help: "Total number of leads created",
		},
	)

	campaignsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaigns_created_total",
			Help: "Total number of campaigns created",
		},
		[]string{"channel"},
	)

	signupCompensations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signup_compensations_total",
			Help: "Total number of compensating identity deletes after profile failures",
		},
	)

	requestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_errors_total",
			Help: "Total number of requests that resolved to an error response",
		},
		[]string{"method", "path", "code"},
	)
)

// RecordRequest tracks one completed HTTP request.
func RecordRequest(method, path string, status int, duration time.Duration) {
	s := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, path, s).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordError tracks one request that resolved to a DomainError.
func RecordError(method, path, code string) {
	requestErrors.WithLabelValues(method, path, code).Inc()
}

// RecordLeadCreated increments the lead creation counter.
func RecordLeadCreated() {
	leadsCreated.Inc()
}

// RecordCampaignCreated increments the per-channel campaign counter.
func RecordCampaignCreated(channel string) {
	campaignsCreated.WithLabelValues(channel).Inc()
}

// RecordSignupCompensation increments the compensating-delete counter.
func RecordSignupCompensation() {
	signupCompensations.Inc()
}

// ServeMetrics exposes the prometheus registry on its own listener. It
// blocks, so callers run it in a goroutine.
func ServeMetrics(addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics listener started", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics listener stopped", zap.Error(err))
	}
}
