package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// maxRequestIDLength bounds incoming request IDs so a hostile header cannot
// bloat every log line.
const maxRequestIDLength = 128

// validRequestID reports whether an incoming request ID is safe to log:
// non-empty, bounded, and printable ASCII only. Control characters and high
// bytes are rejected to rule out log injection.
func validRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x20 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// RequestID returns middleware that assigns each request an identifier and
// echoes it in the response. A valid incoming X-Request-Id header is reused;
// anything else is replaced with a fresh UUIDv4. The ID is stored under
// chi's request ID key so the rest of the middleware stack can read it.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(chimiddleware.RequestIDHeader)
			if !validRequestID(reqID) {
				reqID = uuid.NewString()
			}

			r = r.WithContext(context.WithValue(r.Context(), chimiddleware.RequestIDKey, reqID))
			w.Header().Set(chimiddleware.RequestIDHeader, reqID)
			next.ServeHTTP(w, r)
		})
	}
}
