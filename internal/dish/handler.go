package dish

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"comanda/internal/pkg/message"
	"comanda/internal/pkg/money"
	"comanda/internal/pkg/web"
)

// Service is the dish catalog contract the handler and the order builder
// depend on.
type Service interface {
	Create(ctx context.Context, params CreateParams) (Dish, error)
	List(ctx context.Context) ([]Dish, error)
	Find(ctx context.Context, dishID int64) (Dish, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Dish, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// DishData is the JSON shape of a dish in API responses.
type DishData struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	PriceCents money.Cents `json:"price_cents"`
	Price      string      `json:"price"`
}

type ListResponse struct {
	Count  int        `json:"count"`
	Dishes []DishData `json:"dishes"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.svc.List(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]DishData, 0, len(dishes))
	for _, d := range dishes {
		data = append(data, transformDish(d))
	}

	payload := &ListResponse{Count: len(data), Dishes: data}
	web.RespondOK(w, nil, payload)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	dishID, err := strconv.ParseInt(r.PathValue("dishID"), 10, 64)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	d, err := h.svc.Find(r.Context(), dishID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.DishNotFound, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	data := transformDish(d)
	web.RespondOK(w, nil, &data)
}

type CreateRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Price string `json:"price" validate:"required"`
}

type CreateResponse struct {
	ID int64 `json:"id"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CreateRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	price, err := money.Parse(req.Price)
	if err != nil || price < 0 {
		if err == nil {
			err = errors.New("negative price")
		}
		web.RespondUnprocessableEntity(w, err, message.InvalidInput, map[string]string{"price": "price must be a non-negative amount"})
		return
	}

	created, err := h.svc.Create(r.Context(), CreateParams{Name: req.Name, Price: price})
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := &CreateResponse{ID: created.ID}
	web.RespondCreated(w, nil, data)
}

func transformDish(d Dish) DishData {
	return DishData{
		ID:         d.ID,
		Name:       d.Name,
		PriceCents: d.Price,
		Price:      d.Price.String(),
	}
}
