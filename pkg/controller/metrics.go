package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute labels requests that did not match any registered pattern,
// keeping the label cardinality bounded.
const unmatchedRoute = "unmatched"

// WithMetrics returns a middleware observing request latency in hist, labelled
// by method, the ServeMux pattern that served the request and the status code.
// It must wrap the mux without copying the request, so the pattern set by the
// mux is visible once the handler returns.
func WithMetrics(hist *prometheus.HistogramVec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			hist.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).
				Observe(time.Since(start).Seconds())
		})
	}
}
