package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware configured for the read-only API surface this
// service exposes: any origin may issue the safe methods, and the request
// ID header is exposed so browser callers can correlate log entries.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-Id",
		},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}
