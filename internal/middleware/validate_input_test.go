package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"comanda/internal/middleware"
	"comanda/internal/pkg/web"
	"comanda/internal/platform/validation"
)

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		validator      validation.Validator
		withParams     bool
		wantStatusCode int
		wantNext       bool
	}{
		{
			name:           "valid input",
			validator:      &validation.StubValidator{},
			withParams:     true,
			wantStatusCode: http.StatusOK,
			wantNext:       true,
		},
		{
			name: "invalid input",
			validator: &validation.StubValidator{
				ValidateStructFunc: func(_ any) map[string]string {
					return map[string]string{"table_number": "table_number is required"}
				},
			},
			withParams:     true,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "missing params in context",
			validator:      &validation.StubValidator{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := middleware.ValidateInput[createDishPayload](tt.validator)(next)

			req := httptest.NewRequest(http.MethodPost, "/api/dishes", http.NoBody)
			if tt.withParams {
				ctx := web.NewContextWithParams(req.Context(), createDishPayload{Name: "Margherita"})
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if got := rec.Code; got != tt.wantStatusCode {
				t.Errorf("status code = %d, want: %d", got, tt.wantStatusCode)
			}

			if nextCalled != tt.wantNext {
				t.Errorf("next called = %v, want: %v", nextCalled, tt.wantNext)
			}
		})
	}
}
