package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

func LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		attrs := []any{
			"request_id", RequestIDFromContext(r.Context()),
			"ip", getIPAddress(r),
			"method", r.Method,
			"url", r.URL.String(),
			"proto", r.Proto,
			"user_agent", r.UserAgent(),
			"duration", time.Since(start),
		}

		if writer, ok := w.(*SafeResponseWriter); ok {
			attrs = append(attrs,
				slog.Int("status_code", writer.Status()),
				slog.Int("bytes", writer.BytesWritten()),
			)
		}

		slog.Info("incoming request", attrs...)
	})
}

// getIPAddress extracts the client's IP address from the request.
func getIPAddress(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if forwardedFor := r.Header.Values("X-Forwarded-For"); len(forwardedFor) > 0 {
		ips := strings.Split(forwardedFor[0], ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
