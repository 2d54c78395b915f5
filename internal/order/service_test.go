package order_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"comanda/internal/dish"
	"comanda/internal/order"
	"comanda/internal/pkg/money"
	"comanda/internal/platform/db"
	"comanda/internal/platform/events"
)

var testCatalog = &dish.StubService{
	ListByIDsFunc: func(_ context.Context, ids []int64) ([]dish.Dish, error) {
		known := map[int64]dish.Dish{
			1: {ID: 1, Name: "Margherita", Price: 1099},
			2: {ID: 2, Name: "Carbonara", Price: 899},
		}
		var dishes []dish.Dish
		for _, id := range ids {
			if d, ok := known[id]; ok {
				dishes = append(dishes, d)
			}
		}
		return dishes, nil
	},
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	t.Run("success - computes total and defaults quantity", func(t *testing.T) {
		t.Parallel()

		var gotTotal money.Cents
		var gotLines []order.LineParams
		repo := &order.StubRepo{
			InsertFunc: func(_ context.Context, tableNumber int, total money.Cents) (order.Order, error) {
				gotTotal = total
				return order.Order{ID: 42, TableNumber: tableNumber, Total: total, Status: order.StatusPending}, nil
			},
			InsertLinesFunc: func(_ context.Context, _ int64, lines []order.LineParams) error {
				gotLines = lines
				return nil
			},
		}
		publisher := &events.StubPublisher{}
		svc := order.NewService(repo, testCatalog, &db.StubTxManager{}, publisher)

		created, err := svc.Create(context.Background(), order.CreateParams{
			TableNumber: 3,
			Lines: []order.LineParams{
				{DishID: 1, Quantity: 2},
				{DishID: 2}, // quantity defaults to 1
			},
		})
		if err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}

		// 2 x 10.99 + 1 x 8.99 = 30.97
		if want := money.Cents(3097); gotTotal != want {
			t.Errorf("inserted total = %d, want: %d", gotTotal, want)
		}

		wantLines := []order.LineParams{{DishID: 1, Quantity: 2}, {DishID: 2, Quantity: 1}}
		if !reflect.DeepEqual(gotLines, wantLines) {
			t.Errorf("inserted lines = %+v, want: %+v", gotLines, wantLines)
		}

		if created.ID != 42 {
			t.Errorf("created.ID = %d, want: 42", created.ID)
		}

		if created.Status != order.StatusPending {
			t.Errorf("created.Status = %q, want: %q", created.Status, order.StatusPending)
		}

		if len(publisher.Keys) != 1 || publisher.Keys[0] != events.RouteOrderCreated {
			t.Errorf("published keys = %v, want: [%s]", publisher.Keys, events.RouteOrderCreated)
		}
	})

	t.Run("success - merges duplicate dish ids", func(t *testing.T) {
		t.Parallel()

		var gotLines []order.LineParams
		repo := &order.StubRepo{
			InsertFunc: func(_ context.Context, tableNumber int, total money.Cents) (order.Order, error) {
				return order.Order{ID: 1, TableNumber: tableNumber, Total: total}, nil
			},
			InsertLinesFunc: func(_ context.Context, _ int64, lines []order.LineParams) error {
				gotLines = lines
				return nil
			},
		}
		svc := order.NewService(repo, testCatalog, &db.StubTxManager{}, &events.StubPublisher{})

		_, err := svc.Create(context.Background(), order.CreateParams{
			TableNumber: 1,
			Lines: []order.LineParams{
				{DishID: 1, Quantity: 1},
				{DishID: 1, Quantity: 2},
			},
		})
		if err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}

		wantLines := []order.LineParams{{DishID: 1, Quantity: 3}}
		if !reflect.DeepEqual(gotLines, wantLines) {
			t.Errorf("inserted lines = %+v, want: %+v", gotLines, wantLines)
		}
	})

	t.Run("error - unknown dish rolls back", func(t *testing.T) {
		t.Parallel()

		inserted := false
		repo := &order.StubRepo{
			InsertFunc: func(_ context.Context, tableNumber int, total money.Cents) (order.Order, error) {
				inserted = true
				return order.Order{}, nil
			},
		}
		publisher := &events.StubPublisher{}
		svc := order.NewService(repo, testCatalog, &db.StubTxManager{}, publisher)

		_, err := svc.Create(context.Background(), order.CreateParams{
			TableNumber: 1,
			Lines:       []order.LineParams{{DishID: 999, Quantity: 1}},
		})
		if !errors.Is(err, order.ErrInvalidDish) {
			t.Fatalf("Create() error = %v, want: ErrInvalidDish", err)
		}

		if inserted {
			t.Error("order was inserted despite invalid dish")
		}

		if len(publisher.Published) != 0 {
			t.Errorf("published events = %d, want: 0", len(publisher.Published))
		}
	})

	t.Run("error - empty dish list", func(t *testing.T) {
		t.Parallel()

		svc := order.NewService(&order.StubRepo{}, testCatalog, &db.StubTxManager{}, &events.StubPublisher{})

		_, err := svc.Create(context.Background(), order.CreateParams{TableNumber: 1})
		if !errors.Is(err, order.ErrNoDishes) {
			t.Fatalf("Create() error = %v, want: ErrNoDishes", err)
		}
	})

	t.Run("error - negative quantity", func(t *testing.T) {
		t.Parallel()

		svc := order.NewService(&order.StubRepo{}, testCatalog, &db.StubTxManager{}, &events.StubPublisher{})

		_, err := svc.Create(context.Background(), order.CreateParams{
			TableNumber: 1,
			Lines:       []order.LineParams{{DishID: 1, Quantity: -2}},
		})
		if !errors.Is(err, order.ErrInvalidDish) {
			t.Fatalf("Create() error = %v, want: ErrInvalidDish", err)
		}
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("success - publishes status change", func(t *testing.T) {
		t.Parallel()

		repo := &order.StubRepo{
			UpdateStatusFunc: func(_ context.Context, orderID int64, status order.Status) (order.Order, error) {
				return order.Order{ID: orderID, TableNumber: 2, Status: status, Total: 1099}, nil
			},
		}
		publisher := &events.StubPublisher{}
		svc := order.NewService(repo, testCatalog, &db.StubTxManager{}, publisher)

		updated, err := svc.UpdateStatus(context.Background(), 7, order.StatusReady)
		if err != nil {
			t.Fatalf("UpdateStatus() unexpected error: %v", err)
		}

		if updated.Status != order.StatusReady {
			t.Errorf("updated.Status = %q, want: %q", updated.Status, order.StatusReady)
		}

		if len(publisher.Keys) != 1 || publisher.Keys[0] != events.RouteOrderStatusChanged {
			t.Errorf("published keys = %v, want: [%s]", publisher.Keys, events.RouteOrderStatusChanged)
		}

		if publisher.Published[0].Status != string(order.StatusReady) {
			t.Errorf("event status = %q, want: %q", publisher.Published[0].Status, order.StatusReady)
		}
	})

	t.Run("error - invalid status", func(t *testing.T) {
		t.Parallel()

		svc := order.NewService(&order.StubRepo{}, testCatalog, &db.StubTxManager{}, &events.StubPublisher{})

		_, err := svc.UpdateStatus(context.Background(), 7, order.Status("cancelled"))
		if !errors.Is(err, order.ErrInvalidStatus) {
			t.Fatalf("UpdateStatus() error = %v, want: ErrInvalidStatus", err)
		}
	})

	t.Run("error - order not found", func(t *testing.T) {
		t.Parallel()

		repo := &order.StubRepo{
			UpdateStatusFunc: func(_ context.Context, _ int64, _ order.Status) (order.Order, error) {
				return order.Order{}, order.ErrNotFound
			},
		}
		svc := order.NewService(repo, testCatalog, &db.StubTxManager{}, &events.StubPublisher{})

		_, err := svc.UpdateStatus(context.Background(), 999, order.StatusPaid)
		if !errors.Is(err, order.ErrNotFound) {
			t.Fatalf("UpdateStatus() error = %v, want: ErrNotFound", err)
		}
	})
}

func TestService_ReplaceDishes(t *testing.T) {
	t.Parallel()

	t.Run("success - recomputes total", func(t *testing.T) {
		t.Parallel()

		linesDeleted := false
		var gotTotal money.Cents
		repo := &order.StubRepo{
			FindFunc: func(_ context.Context, orderID int64) (order.Order, error) {
				return order.Order{ID: orderID, TableNumber: 1, Status: order.StatusPending, Total: 1099}, nil
			},
			DeleteLinesFunc: func(_ context.Context, _ int64) error {
				linesDeleted = true
				return nil
			},
			InsertLinesFunc: func(_ context.Context, _ int64, _ []order.LineParams) error {
				return nil
			},
			UpdateTotalFunc: func(_ context.Context, _ int64, total money.Cents) error {
				gotTotal = total
				return nil
			},
		}
		svc := order.NewService(repo, testCatalog, &db.StubTxManager{}, &events.StubPublisher{})

		updated, err := svc.ReplaceDishes(context.Background(), 5, []order.LineParams{
			{DishID: 1, Quantity: 2},
			{DishID: 2, Quantity: 1},
		})
		if err != nil {
			t.Fatalf("ReplaceDishes() unexpected error: %v", err)
		}

		if !linesDeleted {
			t.Error("previous lines were not deleted")
		}

		// 2 x 10.99 + 1 x 8.99 = 30.97
		if want := money.Cents(3097); gotTotal != want {
			t.Errorf("updated total = %d, want: %d", gotTotal, want)
		}

		if updated.Total != gotTotal {
			t.Errorf("updated.Total = %d, want: %d", updated.Total, gotTotal)
		}

		if len(updated.Items) != 2 {
			t.Errorf("len(updated.Items) = %d, want: 2", len(updated.Items))
		}
	})

	t.Run("error - unknown dish leaves lines untouched", func(t *testing.T) {
		t.Parallel()

		linesDeleted := false
		repo := &order.StubRepo{
			FindFunc: func(_ context.Context, orderID int64) (order.Order, error) {
				return order.Order{ID: orderID}, nil
			},
			DeleteLinesFunc: func(_ context.Context, _ int64) error {
				linesDeleted = true
				return nil
			},
		}
		svc := order.NewService(repo, testCatalog, &db.StubTxManager{}, &events.StubPublisher{})

		_, err := svc.ReplaceDishes(context.Background(), 5, []order.LineParams{{DishID: 999}})
		if !errors.Is(err, order.ErrInvalidDish) {
			t.Fatalf("ReplaceDishes() error = %v, want: ErrInvalidDish", err)
		}

		if linesDeleted {
			t.Error("lines were deleted despite invalid dish")
		}
	})

	t.Run("error - order not found", func(t *testing.T) {
		t.Parallel()

		repo := &order.StubRepo{
			FindFunc: func(_ context.Context, _ int64) (order.Order, error) {
				return order.Order{}, order.ErrNotFound
			},
		}
		svc := order.NewService(repo, testCatalog, &db.StubTxManager{}, &events.StubPublisher{})

		_, err := svc.ReplaceDishes(context.Background(), 999, []order.LineParams{{DishID: 1}})
		if !errors.Is(err, order.ErrNotFound) {
			t.Fatalf("ReplaceDishes() error = %v, want: ErrNotFound", err)
		}
	})
}

func TestService_Remove(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		repo := &order.StubRepo{
			DeleteFunc: func(_ context.Context, _ int64) (int64, error) {
				return 1, nil
			},
		}
		svc := order.NewService(repo, testCatalog, &db.StubTxManager{}, &events.StubPublisher{})

		deleted, err := svc.Remove(context.Background(), 5)
		if err != nil {
			t.Fatalf("Remove() unexpected error: %v", err)
		}
		if deleted != 1 {
			t.Errorf("Remove() = %d, want: 1", deleted)
		}
	})

	t.Run("error - not found", func(t *testing.T) {
		t.Parallel()

		repo := &order.StubRepo{
			DeleteFunc: func(_ context.Context, _ int64) (int64, error) {
				return 0, nil
			},
		}
		svc := order.NewService(repo, testCatalog, &db.StubTxManager{}, &events.StubPublisher{})

		if _, err := svc.Remove(context.Background(), 999); !errors.Is(err, order.ErrNotFound) {
			t.Fatalf("Remove() error = %v, want: ErrNotFound", err)
		}
	})
}

func TestService_TotalProfit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		repo order.OrderRepository
		want money.Cents
	}{
		{
			name: "sums paid orders",
			repo: &order.StubRepo{
				PaidTotalFunc: func(_ context.Context) (money.Cents, error) {
					return 2897, nil
				},
			},
			want: 2897,
		},
		{
			name: "zero when no paid orders",
			repo: &order.StubRepo{
				PaidTotalFunc: func(_ context.Context) (money.Cents, error) {
					return 0, nil
				},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := order.NewService(tt.repo, testCatalog, &db.StubTxManager{}, &events.StubPublisher{})

			got, err := svc.TotalProfit(context.Background())
			if err != nil {
				t.Fatalf("TotalProfit() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TotalProfit() = %d, want: %d", got, tt.want)
			}
		})
	}
}

func TestService_Create_PublishFailureDoesNotFail(t *testing.T) {
	t.Parallel()

	repo := &order.StubRepo{
		InsertFunc: func(_ context.Context, tableNumber int, total money.Cents) (order.Order, error) {
			return order.Order{ID: 1, TableNumber: tableNumber, Total: total}, nil
		},
		InsertLinesFunc: func(_ context.Context, _ int64, _ []order.LineParams) error {
			return nil
		},
	}
	publisher := &events.StubPublisher{
		PublishFunc: func(_ context.Context, _ string, _ events.OrderEvent) error {
			return errors.New("broker unavailable")
		},
	}
	svc := order.NewService(repo, testCatalog, &db.StubTxManager{}, publisher)

	if _, err := svc.Create(context.Background(), order.CreateParams{
		TableNumber: 1,
		Lines:       []order.LineParams{{DishID: 1, Quantity: 1}},
	}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
}
