package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type requestIDKey int

const reqIDKey requestIDKey = iota

const HeaderRequestID = "X-Request-Id"

// RequestID assigns every request a UUID, honoring one supplied by an
// upstream proxy, and echoes it back in the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, reqID)
		ctx := context.WithValue(r.Context(), reqIDKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID set by RequestID, or an empty
// string when the middleware did not run.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(reqIDKey).(string); ok {
		return id
	}
	return ""
}
