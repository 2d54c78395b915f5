package webui

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"comanda/internal/dish"
	"comanda/internal/order"
)

type Handler struct {
	orders order.Service
	dishes dish.Service
	tmpl   *template.Template
}

func NewHandler(orders order.Service, dishes dish.Service) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{orders: orders, dishes: dishes, tmpl: tmpl}, nil
}

// listFilters holds the raw filter inputs so the form can be re-rendered with
// whatever the user typed.
type listFilters struct {
	OrderID     string
	TableNumber string
	Status      string
}

func (f listFilters) Query() string {
	params := make([]string, 0, 3)
	if f.OrderID != "" {
		params = append(params, "order_id="+f.OrderID)
	}
	if f.TableNumber != "" {
		params = append(params, "table_number="+f.TableNumber)
	}
	if f.Status != "" {
		params = append(params, "status="+f.Status)
	}
	return strings.Join(params, "&")
}

type listPage struct {
	Flash    string
	Error    string
	Filters  listFilters
	Statuses []order.Status
	Orders   []order.Order
}

func (h *Handler) ShowOrders(w http.ResponseWriter, r *http.Request) {
	page := listPage{
		Flash:    popFlash(w, r),
		Statuses: order.Statuses(),
	}

	query := r.URL.Query()
	page.Filters = listFilters{
		OrderID:     query.Get("order_id"),
		TableNumber: query.Get("table_number"),
		Status:      query.Get("status"),
	}

	filters, err := h.parseFilters(page.Filters)
	if err != nil {
		page.Error = err.Error()
		h.render(w, "orders.html", http.StatusUnprocessableEntity, page)
		return
	}

	orders, err := h.orders.List(r.Context(), filters)
	if err != nil {
		h.renderServerError(w)
		return
	}

	page.Orders = orders
	h.render(w, "orders.html", http.StatusOK, page)
}

func (h *Handler) parseFilters(raw listFilters) (order.Filters, error) {
	var filters order.Filters

	if raw.OrderID != "" {
		id, err := strconv.ParseInt(raw.OrderID, 10, 64)
		if err != nil || id < 1 {
			return filters, errors.New("order # must be a positive number")
		}
		filters.ID = id
	}

	if raw.TableNumber != "" {
		table, err := strconv.Atoi(raw.TableNumber)
		if err != nil || table < 1 {
			return filters, errors.New("table must be a positive number")
		}
		filters.TableNumber = table
	}

	if raw.Status != "" {
		status := order.Status(raw.Status)
		if !status.Valid() {
			return filters, errors.New("unknown status")
		}
		filters.Status = status
	}

	return filters, nil
}

// dishChoice pairs a catalog dish with the quantity already on the order
// being edited.
type dishChoice struct {
	Dish     dish.Dish
	Quantity int
}

type formPage struct {
	Error       string
	TableNumber string
	Dishes      []dishChoice
	OrderID     int64
}

func (h *Handler) ShowCreateForm(w http.ResponseWriter, r *http.Request) {
	choices, err := h.dishChoices(r, nil)
	if err != nil {
		h.renderServerError(w)
		return
	}

	h.render(w, "create.html", http.StatusOK, formPage{Dishes: choices})
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	table, lines, formErr := parseOrderForm(r)
	if formErr == "" {
		_, err := h.orders.Create(r.Context(), order.CreateParams{
			TableNumber: table,
			Lines:       lines,
		})
		switch {
		case err == nil:
			setFlash(w, fmt.Sprintf("Order for table %d created.", table))
			http.Redirect(w, r, "/orders", http.StatusSeeOther)
			return
		case errors.Is(err, order.ErrInvalidDish), errors.Is(err, order.ErrNoDishes):
			formErr = "Pick at least one dish from the menu."
		default:
			h.renderServerError(w)
			return
		}
	}

	choices, err := h.dishChoices(r, submittedQuantities(r))
	if err != nil {
		h.renderServerError(w)
		return
	}

	page := formPage{
		Error:       formErr,
		TableNumber: r.FormValue("table_number"),
		Dishes:      choices,
	}
	h.render(w, "create.html", http.StatusUnprocessableEntity, page)
}

func (h *Handler) ShowEditForm(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(r.PathValue("orderID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	o, err := h.orders.Find(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.renderServerError(w)
		return
	}

	onOrder := make(map[int64]int, len(o.Items))
	for _, item := range o.Items {
		onOrder[item.DishID] = item.Quantity
	}

	choices, err := h.dishChoices(r, onOrder)
	if err != nil {
		h.renderServerError(w)
		return
	}

	page := formPage{
		OrderID:     o.ID,
		TableNumber: strconv.Itoa(o.TableNumber),
		Dishes:      choices,
	}
	h.render(w, "edit.html", http.StatusOK, page)
}

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(r.PathValue("orderID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	_, lines, formErr := parseOrderForm(r)
	if formErr == "" {
		_, err := h.orders.ReplaceDishes(r.Context(), orderID, lines)
		switch {
		case err == nil:
			setFlash(w, fmt.Sprintf("Order #%d updated.", orderID))
			http.Redirect(w, r, "/orders", http.StatusSeeOther)
			return
		case errors.Is(err, order.ErrNotFound):
			http.NotFound(w, r)
			return
		case errors.Is(err, order.ErrInvalidDish), errors.Is(err, order.ErrNoDishes):
			formErr = "Pick at least one dish from the menu."
		default:
			h.renderServerError(w)
			return
		}
	}

	choices, err := h.dishChoices(r, submittedQuantities(r))
	if err != nil {
		h.renderServerError(w)
		return
	}

	page := formPage{
		OrderID:     orderID,
		Error:       formErr,
		TableNumber: r.FormValue("table_number"),
		Dishes:      choices,
	}
	h.render(w, "edit.html", http.StatusUnprocessableEntity, page)
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(r.PathValue("orderID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	status := order.Status(r.FormValue("status"))
	if _, err := h.orders.UpdateStatus(r.Context(), orderID, status); err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, order.ErrInvalidStatus):
			setFlash(w, "That status is not allowed.")
			redirectBack(w, r)
		default:
			h.renderServerError(w)
		}
		return
	}

	setFlash(w, fmt.Sprintf("Order #%d is now %s.", orderID, status))
	redirectBack(w, r)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(r.PathValue("orderID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if _, err := h.orders.Remove(r.Context(), orderID); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.renderServerError(w)
		return
	}

	setFlash(w, fmt.Sprintf("Order #%d deleted.", orderID))
	redirectBack(w, r)
}

type profitPage struct {
	TotalProfit string
}

func (h *Handler) ShowProfit(w http.ResponseWriter, r *http.Request) {
	profit, err := h.orders.TotalProfit(r.Context())
	if err != nil {
		h.renderServerError(w)
		return
	}

	h.render(w, "profit.html", http.StatusOK, profitPage{TotalProfit: profit.String()})
}

// parseOrderForm reads the table number and per-dish quantity inputs. Inputs
// are named qty_<dishID>; blank and zero quantities mean the dish is off the
// order.
func parseOrderForm(r *http.Request) (table int, lines []order.LineParams, formErr string) {
	table, err := strconv.Atoi(r.FormValue("table_number"))
	if err != nil || table < 1 {
		return 0, nil, "Table must be a positive number."
	}

	for field, values := range r.PostForm {
		rawID, found := strings.CutPrefix(field, "qty_")
		if !found || len(values) == 0 || values[0] == "" {
			continue
		}

		dishID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			continue
		}

		qty, err := strconv.Atoi(values[0])
		if err != nil || qty < 0 {
			return 0, nil, "Quantities must be whole numbers."
		}
		if qty == 0 {
			continue
		}

		lines = append(lines, order.LineParams{DishID: dishID, Quantity: qty})
	}

	if len(lines) == 0 {
		return 0, nil, "Pick at least one dish from the menu."
	}

	return table, lines, ""
}

func (h *Handler) dishChoices(r *http.Request, quantities map[int64]int) ([]dishChoice, error) {
	dishes, err := h.dishes.List(r.Context())
	if err != nil {
		return nil, fmt.Errorf("list dishes for form: %w", err)
	}

	choices := make([]dishChoice, 0, len(dishes))
	for _, d := range dishes {
		choices = append(choices, dishChoice{Dish: d, Quantity: quantities[d.ID]})
	}
	return choices, nil
}

// submittedQuantities reads the qty_* inputs back out of the form so a
// re-rendered form keeps what the user typed.
func submittedQuantities(r *http.Request) map[int64]int {
	quantities := make(map[int64]int)
	for field, values := range r.PostForm {
		rawID, found := strings.CutPrefix(field, "qty_")
		if !found || len(values) == 0 || values[0] == "" {
			continue
		}

		dishID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			continue
		}

		qty, err := strconv.Atoi(values[0])
		if err != nil || qty < 1 {
			continue
		}

		quantities[dishID] = qty
	}
	return quantities
}

func (h *Handler) render(w http.ResponseWriter, name string, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		// Headers are already out; nothing left to do but log.
		slog.Error("failed to render template", "template", name, "reason", err)
	}
}

func (h *Handler) renderServerError(w http.ResponseWriter) {
	http.Error(w, "Something went wrong. Please try again.", http.StatusInternalServerError)
}
