package dish_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"comanda/internal/dish"
	"comanda/internal/pkg/web"
)

func TestHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		svc            dish.Service
		wantStatusCode int
		wantBody       *dish.ListResponse
	}{
		{
			name: "success - returns dishes",
			svc: &dish.StubService{
				ListFunc: func(_ context.Context) ([]dish.Dish, error) {
					return []dish.Dish{
						{ID: 1, Name: "Margherita", Price: 1099},
						{ID: 2, Name: "Carbonara", Price: 899},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantBody: &dish.ListResponse{
				Count: 2,
				Dishes: []dish.DishData{
					{ID: 1, Name: "Margherita", PriceCents: 1099, Price: "10.99"},
					{ID: 2, Name: "Carbonara", PriceCents: 899, Price: "8.99"},
				},
			},
		},
		{
			name: "error - service fails",
			svc: &dish.StubService{
				ListFunc: func(_ context.Context) ([]dish.Dish, error) {
					return nil, errors.New("db error")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := dish.NewHandler(tt.svc)

			req := httptest.NewRequest(http.MethodGet, "/api/dishes", http.NoBody)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if got := res.StatusCode; got != tt.wantStatusCode {
				t.Fatalf("res.StatusCode = %d, want: %d", got, tt.wantStatusCode)
			}

			if tt.wantBody == nil {
				return
			}

			var body web.OKResponse[*dish.ListResponse]
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if !reflect.DeepEqual(body.Data, tt.wantBody) {
				t.Errorf("body.Data = %+v, want: %+v", body.Data, tt.wantBody)
			}
		})
	}
}

func TestHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		req            dish.CreateRequest
		svc            dish.Service
		wantStatusCode int
		wantID         int64
	}{
		{
			name: "success - creates dish",
			req:  dish.CreateRequest{Name: "Margherita", Price: "10.99"},
			svc: &dish.StubService{
				CreateFunc: func(_ context.Context, params dish.CreateParams) (dish.Dish, error) {
					if params.Price != 1099 {
						t.Errorf("params.Price = %d, want: 1099", params.Price)
					}
					return dish.Dish{ID: 7, Name: params.Name, Price: params.Price}, nil
				},
			},
			wantStatusCode: http.StatusCreated,
			wantID:         7,
		},
		{
			name:           "error - invalid price",
			req:            dish.CreateRequest{Name: "Margherita", Price: "ten"},
			svc:            &dish.StubService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "error - negative price",
			req:            dish.CreateRequest{Name: "Margherita", Price: "-1.00"},
			svc:            &dish.StubService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "error - service fails",
			req:  dish.CreateRequest{Name: "Margherita", Price: "10.99"},
			svc: &dish.StubService{
				CreateFunc: func(_ context.Context, _ dish.CreateParams) (dish.Dish, error) {
					return dish.Dish{}, errors.New("db error")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := dish.NewHandler(tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/api/dishes", http.NoBody)
			ctx := web.NewContextWithParams(req.Context(), tt.req)
			req = req.WithContext(ctx)
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if got := res.StatusCode; got != tt.wantStatusCode {
				t.Fatalf("res.StatusCode = %d, want: %d", got, tt.wantStatusCode)
			}

			if tt.wantStatusCode != http.StatusCreated {
				return
			}

			var body web.OKResponse[*dish.CreateResponse]
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if body.Data.ID != tt.wantID {
				t.Errorf("body.Data.ID = %d, want: %d", body.Data.ID, tt.wantID)
			}
		})
	}
}

func TestHandler_Find(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		dishID         string
		svc            dish.Service
		wantStatusCode int
	}{
		{
			name:   "success - returns dish",
			dishID: "7",
			svc: &dish.StubService{
				FindFunc: func(_ context.Context, dishID int64) (dish.Dish, error) {
					return dish.Dish{ID: dishID, Name: "Margherita", Price: 1099}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:   "error - dish not found",
			dishID: "999",
			svc: &dish.StubService{
				FindFunc: func(_ context.Context, _ int64) (dish.Dish, error) {
					return dish.Dish{}, dish.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "error - malformed dish id",
			dishID:         "abc",
			svc:            &dish.StubService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := dish.NewHandler(tt.svc)

			req := httptest.NewRequest(http.MethodGet, "/api/dishes/"+tt.dishID, http.NoBody)
			req.SetPathValue("dishID", tt.dishID)
			rec := httptest.NewRecorder()

			h.Find(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if got := res.StatusCode; got != tt.wantStatusCode {
				t.Fatalf("res.StatusCode = %d, want: %d", got, tt.wantStatusCode)
			}

			if tt.wantStatusCode != http.StatusOK {
				return
			}

			var body web.OKResponse[dish.DishData]
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if body.Data.Price != "10.99" {
				t.Errorf("body.Data.Price = %q, want: %q", body.Data.Price, "10.99")
			}
		})
	}
}
