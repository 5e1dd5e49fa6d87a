package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
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

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadUnifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_unifications_total",
			Help: "Total number of lead unification runs",
		},
		[]string{"result"},
	)

	summaryComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_summaries_total",
			Help: "Total number of analytics summary computations",
		},
		[]string{"result"},
	)

	dataAPIErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "data_api_errors_total",
			Help: "Total number of data API failures",
		},
		[]string{"kind"},
	)

	remindersPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "expiry_reminders_published_total",
			Help: "Total number of expiry reminder messages published",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordUnification(result string) {
	leadUnifications.WithLabelValues(result).Inc()
}

func RecordSummary(result string) {
	summaryComputations.WithLabelValues(result).Inc()
}

func RecordDataAPIError(kind string) {
	dataAPIErrors.WithLabelValues(kind).Inc()
}

func RecordReminderPublished() {
	remindersPublished.Inc()
}
