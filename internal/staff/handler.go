package staff

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"comanda/internal/pkg/message"
	"comanda/internal/pkg/web"
)

const maskChar = "*"

// Service is the staff account contract the HTTP handlers depend on.
type Service interface {
	Register(ctx context.Context, params RegisterParams) (Staff, error)
	Login(ctx context.Context, params LoginParams) (string, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type RegisterRequest struct {
	Email           string `json:"email,omitempty" validate:"required,email"`
	Password        string `json:"password,omitempty" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm,omitempty" validate:"required,eqfield=Password"`
}

func (r RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("password_confirm", maskChar),
	)
}

type RegisterResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	created, err := h.svc.Register(r.Context(), RegisterParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, ErrStaffExists) {
			web.RespondConflict(w, err, message.StaffExists, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := "Staff account created."
	data := &RegisterResponse{
		ID:        created.ID,
		Email:     created.Email,
		CreatedAt: created.CreatedAt,
		UpdatedAt: created.UpdatedAt,
	}
	web.RespondCreated(w, &msg, data)
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	token, err := h.svc.Login(r.Context(), LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidCred) {
			web.RespondUnauthorized(w, err, message.InvalidCreds, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := "Logged in."
	data := &LoginResponse{AccessToken: token}
	web.RespondOK(w, &msg, data)
}
