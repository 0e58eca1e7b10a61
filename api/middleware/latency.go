package middleware

import (
	"net/http"
	"time"
)

// Latency delays every request by d before handling, simulating network
// round-trip time so clients exercise their loading states. A zero duration
// is a no-op; in-flight cancellation is honored.
func Latency(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-r.Context().Done():
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
