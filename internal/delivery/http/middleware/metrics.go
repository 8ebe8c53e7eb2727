package middleware

import (
	"net/http"
	"strconv"
	"time"

	"eventregistration/internal/metrics"
)

// unmatchedRoute labels requests that no route pattern matched, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics records request count, latency and in-flight requests per route pattern.
// The route label is read from r.Pattern after the mux has served the request.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		start := time.Now()
		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).Inc()
	})
}
