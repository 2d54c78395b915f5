package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"comanda/internal/pkg/message"
	"comanda/internal/pkg/web"
)

// CheckContentType rejects API requests with a body whose Content-Type is not
// application/json. Body-less requests pass through.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodDelete {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		if !strings.HasPrefix(contentType, web.MimeJSON) {
			web.Fail(w, http.StatusUnsupportedMediaType, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
