package order

import (
	"context"
	"errors"

	"comanda/internal/pkg/money"
)

type StubService struct {
	CreateFunc        func(ctx context.Context, params CreateParams) (Order, error)
	FindFunc          func(ctx context.Context, orderID int64) (Order, error)
	ListFunc          func(ctx context.Context, filters Filters) ([]Order, error)
	UpdateStatusFunc  func(ctx context.Context, orderID int64, status Status) (Order, error)
	ReplaceDishesFunc func(ctx context.Context, orderID int64, lines []LineParams) (Order, error)
	RemoveFunc        func(ctx context.Context, orderID int64) (int64, error)
	TotalProfitFunc   func(ctx context.Context) (money.Cents, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Create(ctx context.Context, params CreateParams) (Order, error) {
	if s.CreateFunc == nil {
		return Order{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Find(ctx context.Context, orderID int64) (Order, error) {
	if s.FindFunc == nil {
		return Order{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, orderID)
}

func (s *StubService) List(ctx context.Context, filters Filters) ([]Order, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, filters)
}

func (s *StubService) UpdateStatus(ctx context.Context, orderID int64, status Status) (Order, error) {
	if s.UpdateStatusFunc == nil {
		return Order{}, errors.New("UpdateStatus() not implemented by stub")
	}
	return s.UpdateStatusFunc(ctx, orderID, status)
}

func (s *StubService) ReplaceDishes(ctx context.Context, orderID int64, lines []LineParams) (Order, error) {
	if s.ReplaceDishesFunc == nil {
		return Order{}, errors.New("ReplaceDishes() not implemented by stub")
	}
	return s.ReplaceDishesFunc(ctx, orderID, lines)
}

func (s *StubService) Remove(ctx context.Context, orderID int64) (int64, error) {
	if s.RemoveFunc == nil {
		return 0, errors.New("Remove() not implemented by stub")
	}
	return s.RemoveFunc(ctx, orderID)
}

func (s *StubService) TotalProfit(ctx context.Context) (money.Cents, error) {
	if s.TotalProfitFunc == nil {
		return 0, errors.New("TotalProfit() not implemented by stub")
	}
	return s.TotalProfitFunc(ctx)
}

type StubRepo struct {
	InsertFunc       func(ctx context.Context, tableNumber int, total money.Cents) (Order, error)
	InsertLinesFunc  func(ctx context.Context, orderID int64, lines []LineParams) error
	DeleteLinesFunc  func(ctx context.Context, orderID int64) error
	UpdateTotalFunc  func(ctx context.Context, orderID int64, total money.Cents) error
	FindFunc         func(ctx context.Context, orderID int64) (Order, error)
	ListFunc         func(ctx context.Context, filters Filters) ([]Order, error)
	UpdateStatusFunc func(ctx context.Context, orderID int64, status Status) (Order, error)
	DeleteFunc       func(ctx context.Context, orderID int64) (int64, error)
	PaidTotalFunc    func(ctx context.Context) (money.Cents, error)
}

var _ OrderRepository = (*StubRepo)(nil)

func (r *StubRepo) Insert(ctx context.Context, tableNumber int, total money.Cents) (Order, error) {
	if r.InsertFunc == nil {
		return Order{}, errors.New("Insert() not implemented by stub")
	}
	return r.InsertFunc(ctx, tableNumber, total)
}

func (r *StubRepo) InsertLines(ctx context.Context, orderID int64, lines []LineParams) error {
	if r.InsertLinesFunc == nil {
		return errors.New("InsertLines() not implemented by stub")
	}
	return r.InsertLinesFunc(ctx, orderID, lines)
}

func (r *StubRepo) DeleteLines(ctx context.Context, orderID int64) error {
	if r.DeleteLinesFunc == nil {
		return errors.New("DeleteLines() not implemented by stub")
	}
	return r.DeleteLinesFunc(ctx, orderID)
}

func (r *StubRepo) UpdateTotal(ctx context.Context, orderID int64, total money.Cents) error {
	if r.UpdateTotalFunc == nil {
		return errors.New("UpdateTotal() not implemented by stub")
	}
	return r.UpdateTotalFunc(ctx, orderID, total)
}

func (r *StubRepo) Find(ctx context.Context, orderID int64) (Order, error) {
	if r.FindFunc == nil {
		return Order{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, orderID)
}

func (r *StubRepo) List(ctx context.Context, filters Filters) ([]Order, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, filters)
}

func (r *StubRepo) UpdateStatus(ctx context.Context, orderID int64, status Status) (Order, error) {
	if r.UpdateStatusFunc == nil {
		return Order{}, errors.New("UpdateStatus() not implemented by stub")
	}
	return r.UpdateStatusFunc(ctx, orderID, status)
}

func (r *StubRepo) Delete(ctx context.Context, orderID int64) (int64, error) {
	if r.DeleteFunc == nil {
		return 0, errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, orderID)
}

func (r *StubRepo) PaidTotal(ctx context.Context) (money.Cents, error) {
	if r.PaidTotalFunc == nil {
		return 0, errors.New("PaidTotal() not implemented by stub")
	}
	return r.PaidTotalFunc(ctx)
}
