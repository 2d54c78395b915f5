package staff

import (
	"net/http"

	"comanda/internal/pkg/message"
	"comanda/internal/pkg/security"
	"comanda/internal/pkg/web"
	"comanda/internal/platform/jwt"
)

// RequireToken rejects requests without a valid bearer token and stores the
// authenticated staff id in the request context.
func RequireToken(signer jwt.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil || token == "" {
				web.RespondUnauthorized(w, err, message.InvalidCreds, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidCreds, nil)
				return
			}

			ctx := NewContextWithStaff(r.Context(), claims.StaffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
