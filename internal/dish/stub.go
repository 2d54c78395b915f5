package dish

import (
	"context"
	"errors"
)

type StubService struct {
	CreateFunc    func(ctx context.Context, params CreateParams) (Dish, error)
	ListFunc      func(ctx context.Context) ([]Dish, error)
	FindFunc      func(ctx context.Context, dishID int64) (Dish, error)
	ListByIDsFunc func(ctx context.Context, ids []int64) ([]Dish, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Create(ctx context.Context, params CreateParams) (Dish, error) {
	if s.CreateFunc == nil {
		return Dish{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) List(ctx context.Context) ([]Dish, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, dishID int64) (Dish, error) {
	if s.FindFunc == nil {
		return Dish{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, dishID)
}

func (s *StubService) ListByIDs(ctx context.Context, ids []int64) ([]Dish, error) {
	if s.ListByIDsFunc == nil {
		return nil, errors.New("ListByIDs() not implemented by stub")
	}
	return s.ListByIDsFunc(ctx, ids)
}

type StubRepo struct {
	CreateFunc    func(ctx context.Context, params CreateParams) (Dish, error)
	ListFunc      func(ctx context.Context) ([]Dish, error)
	FindFunc      func(ctx context.Context, dishID int64) (Dish, error)
	ListByIDsFunc func(ctx context.Context, ids []int64) ([]Dish, error)
}

var _ DishRepository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (Dish, error) {
	if r.CreateFunc == nil {
		return Dish{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) List(ctx context.Context) ([]Dish, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Find(ctx context.Context, dishID int64) (Dish, error) {
	if r.FindFunc == nil {
		return Dish{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, dishID)
}

func (r *StubRepo) ListByIDs(ctx context.Context, ids []int64) ([]Dish, error) {
	if r.ListByIDsFunc == nil {
		return nil, errors.New("ListByIDs() not implemented by stub")
	}
	return r.ListByIDsFunc(ctx, ids)
}
