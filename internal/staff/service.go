package staff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"comanda/internal/config"
	"comanda/internal/platform/hash"
	"comanda/internal/platform/jwt"
)

var (
	ErrStaffExists = errors.New("staff service: staff already exists")
	ErrInvalidCred = errors.New("staff service: invalid credentials")
)

type StaffRepository interface {
	Create(ctx context.Context, params CreateParams) (Staff, error)
	FindByEmail(ctx context.Context, email string) (Staff, error)
}

type service struct {
	repo   StaffRepository
	hasher hash.Hasher
	signer jwt.Signer
	cfg    *config.JWT
}

func NewService(repo StaffRepository, hasher hash.Hasher, signer jwt.Signer, cfg *config.JWT) *service {
	return &service{
		repo:   repo,
		hasher: hasher,
		signer: signer,
		cfg:    cfg,
	}
}

var _ Service = (*service)(nil)

type RegisterParams struct {
	Email    string
	Password string
}

func (p RegisterParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

type LoginParams struct {
	Email    string
	Password string
}

func (p LoginParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

func (s *service) Register(ctx context.Context, params RegisterParams) (Staff, error) {
	_, err := s.repo.FindByEmail(ctx, params.Email)
	if err == nil {
		return Staff{}, ErrStaffExists
	}
	if !errors.Is(err, ErrNotFound) {
		return Staff{}, fmt.Errorf("find staff with email %s: %w", params.Email, err)
	}

	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		return Staff{}, fmt.Errorf("hasher hash: %w", err)
	}

	created, err := s.repo.Create(ctx, CreateParams{Email: params.Email, PasswordHash: hashed})
	if err != nil {
		// A concurrent Register can slip past the lookup above; the unique
		// constraint catches it.
		if errors.Is(err, ErrDuplicateEmail) {
			return Staff{}, ErrStaffExists
		}
		return Staff{}, fmt.Errorf("create staff %s: %w", params.Email, err)
	}

	return created, nil
}

// Login verifies the credentials and returns a signed access token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, params LoginParams) (string, error) {
	member, err := s.repo.FindByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCred
		}
		return "", fmt.Errorf("find staff by email %q: %w", params.Email, err)
	}

	ok, err := s.hasher.Verify(params.Password, member.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password for staff %q: %w", member.Email, err)
	}
	if !ok {
		return "", ErrInvalidCred
	}

	token, err := s.signer.Sign(member.ID, []string{s.cfg.Issuer}, s.cfg.TTL.Duration)
	if err != nil {
		return "", fmt.Errorf("sign access token for staff %q: %w", member.Email, err)
	}

	return token, nil
}
