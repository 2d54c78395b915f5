package middleware

import (
	"errors"
	"net/http"

	"comanda/internal/pkg/message"
	"comanda/internal/pkg/web"
	"comanda/internal/platform/validation"
)

// ValidateInput validates the decoded payload of type T placed in the
// request context by DecodePayload. Field errors come back as a 422 with a
// per-field message map.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); errs != nil {
				web.RespondUnprocessableEntity(w, errors.New("invalid input"), message.InvalidInput, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
