package middleware

import (
	"net/http"
	"time"

	"github.com/Temutjin2k/launch-dashboard/pkg/metrics"
)

// Metrics records HTTP metrics
func (m *Middleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip metrics endpoint to avoid recursion
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		metrics.HttpRequestsInFlight.WithLabelValues(m.service).Inc()
		defer metrics.HttpRequestsInFlight.WithLabelValues(m.service).Dec()

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPMetrics(m.service, r.Method, routeLabel(r), rw.statusCode, time.Since(start))
	})
}
