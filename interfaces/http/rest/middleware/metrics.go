package middleware

import (
	"net/http"
	"time"

	"products-backend/pkg/observability"

	"github.com/go-chi/chi/v5/middleware"
)

// Metrics records request counts and latency per route pattern.
func Metrics(collector *observability.Collector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			collector.ObserveRequest(r.Method, routePattern(r), responseStatus(ww), time.Since(start))
		})
	}
}
