package dish

import "context"

// DishRepository is the storage contract for the dish catalog.
type DishRepository interface {
	Create(ctx context.Context, params CreateParams) (Dish, error)
	List(ctx context.Context) ([]Dish, error)
	Find(ctx context.Context, dishID int64) (Dish, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Dish, error)
}

type service struct {
	repo DishRepository
}

func NewService(repo DishRepository) *service {
	return &service{repo: repo}
}

var _ Service = (*service)(nil)

func (s *service) Create(ctx context.Context, params CreateParams) (Dish, error) {
	return s.repo.Create(ctx, params)
}

func (s *service) List(ctx context.Context) ([]Dish, error) {
	return s.repo.List(ctx)
}

func (s *service) Find(ctx context.Context, dishID int64) (Dish, error) {
	return s.repo.Find(ctx, dishID)
}

func (s *service) ListByIDs(ctx context.Context, ids []int64) ([]Dish, error) {
	return s.repo.ListByIDs(ctx, ids)
}
