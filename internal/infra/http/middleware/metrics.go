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

	signupsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waitlist_signups_accepted_total",
			Help: "Total number of accepted waitlist signups",
		},
		[]string{"priority", "level"},
	)

	signupsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waitlist_signups_rejected_total",
			Help: "Total number of rejected waitlist signups",
		},
		[]string{"reason"},
	)

	analyticsEventsStored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_events_stored_total",
			Help: "Total number of analytics events persisted",
		},
	)

	notificationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_errors_total",
			Help: "Total number of notification delivery errors",
		},
		[]string{"service"},
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

func RecordSignupAccepted(priority, level string) {
	signupsAccepted.WithLabelValues(priority, level).Inc()
}

func RecordSignupRejected(reason string) {
	signupsRejected.WithLabelValues(reason).Inc()
}

func RecordAnalyticsEvents(count int) {
	analyticsEventsStored.Add(float64(count))
}

func RecordNotificationError(service string) {
	notificationErrors.WithLabelValues(service).Inc()
}
