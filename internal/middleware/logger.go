package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestLogger logs basic information about each HTTP request,
// including method, path, request id and how long it took to serve.
// The generated request id is echoed back in the X-Request-Id header.
func RequestLogger(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := uuid.New().String()
			w.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(w, r)

			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote", r.RemoteAddr).
				Str("request_id", requestID).
				Dur("took", time.Since(start)).
				Msg("request served")
		})
	}
}
