package order

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"comanda/internal/pkg/message"
	"comanda/internal/pkg/money"
	"comanda/internal/pkg/web"
)

// Service is the order management contract the HTTP handlers depend on.
type Service interface {
	Create(ctx context.Context, params CreateParams) (Order, error)
	Find(ctx context.Context, orderID int64) (Order, error)
	List(ctx context.Context, filters Filters) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status Status) (Order, error)
	ReplaceDishes(ctx context.Context, orderID int64, lines []LineParams) (Order, error)
	Remove(ctx context.Context, orderID int64) (int64, error)
	TotalProfit(ctx context.Context) (money.Cents, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// LineData is the JSON shape of an order line in API responses.
type LineData struct {
	DishID     int64       `json:"dish_id"`
	Name       string      `json:"name"`
	PriceCents money.Cents `json:"price_cents"`
	Price      string      `json:"price"`
	Quantity   int         `json:"quantity"`
}

// OrderData is the JSON shape of an order in API responses.
type OrderData struct {
	ID          int64       `json:"id"`
	TableNumber int         `json:"table_number"`
	Status      Status      `json:"status"`
	TotalCents  money.Cents `json:"total_cents"`
	Total       string      `json:"total"`
	Dishes      []LineData  `json:"dishes"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderLineRequest struct {
	DishID   int64 `json:"dish_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"omitempty,gt=0"`
}

type CreateOrderRequest struct {
	TableNumber int                `json:"table_number" validate:"required,gt=0"`
	Dishes      []OrderLineRequest `json:"dishes" validate:"required,min=1,dive"`
}

type CreateOrderResponse struct {
	ID int64 `json:"id"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CreateOrderRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	created, err := h.svc.Create(r.Context(), CreateParams{
		TableNumber: req.TableNumber,
		Lines:       toLineParams(req.Dishes),
	})
	if err != nil {
		respondOrderError(w, err)
		return
	}

	data := &CreateOrderResponse{ID: created.ID}
	web.RespondCreated(w, nil, data)
}

type ListResponse struct {
	Count  int         `json:"count"`
	Orders []OrderData `json:"orders"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters, errs := filtersFromQuery(r)
	if errs != nil {
		web.RespondUnprocessableEntity(w, errors.New("invalid list filters"), message.InvalidInput, errs)
		return
	}

	orders, err := h.svc.List(r.Context(), filters)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]OrderData, 0, len(orders))
	for _, o := range orders {
		data = append(data, transformOrder(o))
	}

	payload := &ListResponse{Count: len(data), Orders: data}
	web.RespondOK(w, nil, payload)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromPath(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	o, err := h.svc.Find(r.Context(), orderID)
	if err != nil {
		respondOrderError(w, err)
		return
	}

	data := transformOrder(o)
	web.RespondOK(w, nil, &data)
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending ready paid"`
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromPath(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	req, err := web.ParamsFromContext[UpdateStatusRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	updated, err := h.svc.UpdateStatus(r.Context(), orderID, Status(req.Status))
	if err != nil {
		respondOrderError(w, err)
		return
	}

	data := transformOrder(updated)
	web.RespondOK(w, nil, &data)
}

type ReplaceDishesRequest struct {
	Dishes []OrderLineRequest `json:"dishes" validate:"required,min=1,dive"`
}

func (h *Handler) ReplaceDishes(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromPath(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	req, err := web.ParamsFromContext[ReplaceDishesRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	updated, err := h.svc.ReplaceDishes(r.Context(), orderID, toLineParams(req.Dishes))
	if err != nil {
		respondOrderError(w, err)
		return
	}

	data := transformOrder(updated)
	web.RespondOK(w, nil, &data)
}

type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromPath(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	deleted, err := h.svc.Remove(r.Context(), orderID)
	if err != nil {
		respondOrderError(w, err)
		return
	}

	data := &DeleteResponse{Deleted: deleted}
	web.RespondOK(w, nil, data)
}

type RevenueResponse struct {
	TotalProfitCents money.Cents `json:"total_profit_cents"`
	TotalProfit      string      `json:"total_profit"`
}

func (h *Handler) Revenue(w http.ResponseWriter, r *http.Request) {
	profit, err := h.svc.TotalProfit(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := &RevenueResponse{
		TotalProfitCents: profit,
		TotalProfit:      profit.String(),
	}
	web.RespondOK(w, nil, data)
}

func orderIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("orderID"), 10, 64)
}

func filtersFromQuery(r *http.Request) (Filters, map[string]string) {
	var filters Filters
	errs := make(map[string]string)

	query := r.URL.Query()
	if raw := query.Get("order_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			errs["order_id"] = "order_id must be a positive integer"
		}
		filters.ID = id
	}

	if raw := query.Get("table_number"); raw != "" {
		table, err := strconv.Atoi(raw)
		if err != nil || table < 1 {
			errs["table_number"] = "table_number must be a positive integer"
		}
		filters.TableNumber = table
	}

	if raw := query.Get("status"); raw != "" {
		status := Status(raw)
		if !status.Valid() {
			errs["status"] = "status must be one of: pending, ready, paid"
		}
		filters.Status = status
	}

	if len(errs) > 0 {
		return Filters{}, errs
	}
	return filters, nil
}

func toLineParams(lines []OrderLineRequest) []LineParams {
	params := make([]LineParams, 0, len(lines))
	for _, line := range lines {
		params = append(params, LineParams{DishID: line.DishID, Quantity: line.Quantity})
	}
	return params
}

func transformOrder(o Order) OrderData {
	dishes := make([]LineData, 0, len(o.Items))
	for _, item := range o.Items {
		dishes = append(dishes, LineData{
			DishID:     item.DishID,
			Name:       item.Name,
			PriceCents: item.Price,
			Price:      item.Price.String(),
			Quantity:   item.Quantity,
		})
	}

	return OrderData{
		ID:          o.ID,
		TableNumber: o.TableNumber,
		Status:      o.Status,
		TotalCents:  o.Total,
		Total:       o.Total.String(),
		Dishes:      dishes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func respondOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, message.OrderNotFound, nil)
	case errors.Is(err, ErrInvalidStatus):
		web.RespondUnprocessableEntity(w, err, message.InvalidStatus, nil)
	case errors.Is(err, ErrInvalidDish), errors.Is(err, ErrNoDishes):
		web.RespondUnprocessableEntity(w, err, message.InvalidInput, map[string]string{"dishes": err.Error()})
	default:
		web.RespondInternalServerError(w, err)
	}
}
