package staff_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"comanda/internal/platform/jwt"
	"comanda/internal/staff"
)

func TestRequireToken(t *testing.T) {
	t.Parallel()

	signer := &jwt.StubSigner{
		VerifyFunc: func(tokenString string) (*jwt.Claims, error) {
			if tokenString != "valid-token" {
				return nil, errors.New("token is invalid")
			}
			return &jwt.Claims{StaffID: "f2d9"}, nil
		},
	}

	tests := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantStaffID    string
	}{
		{
			name:           "success - valid bearer token",
			authHeader:     "Bearer valid-token",
			wantStatusCode: http.StatusOK,
			wantStaffID:    "f2d9",
		},
		{
			name:           "error - missing header",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "error - malformed header",
			authHeader:     "valid-token",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "error - invalid token",
			authHeader:     "Bearer forged-token",
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotStaffID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				staffID, err := staff.FromContext(r.Context())
				if err != nil {
					t.Errorf("staff.FromContext() unexpected error: %v", err)
				}
				gotStaffID = staffID
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/orders", http.NoBody)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			staff.RequireToken(signer)(next).ServeHTTP(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if got := res.StatusCode; got != tt.wantStatusCode {
				t.Fatalf("res.StatusCode = %d, want: %d", got, tt.wantStatusCode)
			}

			if gotStaffID != tt.wantStaffID {
				t.Errorf("staff id in context = %q, want: %q", gotStaffID, tt.wantStaffID)
			}
		})
	}
}
