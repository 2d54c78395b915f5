package dish_test

import (
	"context"
	"reflect"
	"testing"

	"comanda/internal/dish"
)

func TestService_Create(t *testing.T) {
	t.Parallel()

	repo := &dish.StubRepo{
		CreateFunc: func(_ context.Context, params dish.CreateParams) (dish.Dish, error) {
			return dish.Dish{ID: 1, Name: params.Name, Price: params.Price}, nil
		},
	}
	svc := dish.NewService(repo)

	created, err := svc.Create(context.Background(), dish.CreateParams{Name: "Margherita", Price: 1099})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	want := dish.Dish{ID: 1, Name: "Margherita", Price: 1099}
	if !reflect.DeepEqual(created, want) {
		t.Errorf("Create() = %+v, want: %+v", created, want)
	}
}

func TestService_ListByIDs(t *testing.T) {
	t.Parallel()

	var gotIDs []int64
	repo := &dish.StubRepo{
		ListByIDsFunc: func(_ context.Context, ids []int64) ([]dish.Dish, error) {
			gotIDs = ids
			return []dish.Dish{
				{ID: 1, Name: "Margherita", Price: 1099},
				{ID: 2, Name: "Carbonara", Price: 899},
			}, nil
		},
	}
	svc := dish.NewService(repo)

	dishes, err := svc.ListByIDs(context.Background(), []int64{1, 2})
	if err != nil {
		t.Fatalf("ListByIDs() unexpected error: %v", err)
	}

	if !reflect.DeepEqual(gotIDs, []int64{1, 2}) {
		t.Errorf("repo received ids %v, want: %v", gotIDs, []int64{1, 2})
	}
	if len(dishes) != 2 {
		t.Errorf("len(dishes) = %d, want: %d", len(dishes), 2)
	}
}
