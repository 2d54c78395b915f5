package staff

import (
	"context"
	"errors"
)

type StubService struct {
	RegisterFunc func(ctx context.Context, params RegisterParams) (Staff, error)
	LoginFunc    func(ctx context.Context, params LoginParams) (string, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Register(ctx context.Context, params RegisterParams) (Staff, error) {
	if s.RegisterFunc == nil {
		return Staff{}, errors.New("Register() not implemented by stub")
	}
	return s.RegisterFunc(ctx, params)
}

func (s *StubService) Login(ctx context.Context, params LoginParams) (string, error) {
	if s.LoginFunc == nil {
		return "", errors.New("Login() not implemented by stub")
	}
	return s.LoginFunc(ctx, params)
}

type StubRepo struct {
	CreateFunc      func(ctx context.Context, params CreateParams) (Staff, error)
	FindByEmailFunc func(ctx context.Context, email string) (Staff, error)
}

var _ StaffRepository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (Staff, error) {
	if r.CreateFunc == nil {
		return Staff{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) FindByEmail(ctx context.Context, email string) (Staff, error) {
	if r.FindByEmailFunc == nil {
		return Staff{}, errors.New("FindByEmail() not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}
