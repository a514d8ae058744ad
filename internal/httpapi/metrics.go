package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Model-backed analyses take seconds, so the buckets reach well past the
// client-side timeout.
var latencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60}

var (
	requestsServed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitscan",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requests answered by the FitScan API, by route, method and status.",
	}, []string{"route", "method", "status"})

	requestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitscan",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time to answer a FitScan API request, including model calls.",
		Buckets:   latencyBuckets,
	}, []string{"route", "method", "status"})

	requestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitscan",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "FitScan API requests currently being answered.",
	})

	rejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitscan",
		Subsystem: "http",
		Name:      "rejected_total",
		Help:      "Requests turned away before reaching the coach (rate limit, oversized body).",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(requestsServed, requestLatency, requestsInFlight, rejectedTotal)
}

// MetricsMiddleware records count, latency and in-flight gauges per route.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		route, status := routeLabel(r), strconv.Itoa(code)
		requestsServed.WithLabelValues(route, r.Method, status).Inc()
		requestLatency.WithLabelValues(route, r.Method, status).Observe(time.Since(start).Seconds())
	})
}

// routeLabel returns the matched chi pattern, read after routing. Requests
// chi could not match share "unmatched"; outside a router the raw path is used.
func routeLabel(r *http.Request) string {
	rc := chi.RouteContext(r.Context())
	if rc == nil {
		return r.URL.Path
	}
	if p := rc.RoutePattern(); p != "" {
		return p
	}
	return "unmatched"
}

// IncrementBackpressure counts a request rejected with 413 or 429.
func IncrementBackpressure(reason string) {
	if reason == "" {
		reason = "unspecified"
	}
	rejectedTotal.WithLabelValues(reason).Inc()
}
