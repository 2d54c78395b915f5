package app

import (
	"comanda/internal/dish"
	"comanda/internal/middleware"
	"comanda/internal/order"
	"comanda/internal/platform/jwt"
	"comanda/internal/platform/router"
	"comanda/internal/platform/validation"
	"comanda/internal/staff"
	"comanda/internal/webui"
)

func mountStaffRoutes(r router.Router, handler *staff.Handler, validator validation.Validator, maxBodySize int64) {
	r.Group("/api/auth", func(gr router.Router) {
		gr.Post("/register", handler.Register,
			middleware.DecodePayload[staff.RegisterRequest](maxBodySize),
			middleware.ValidateInput[staff.RegisterRequest](validator))
		gr.Post("/login", handler.Login,
			middleware.DecodePayload[staff.LoginRequest](maxBodySize),
			middleware.ValidateInput[staff.LoginRequest](validator))
	}, middleware.CheckContentType)
}

func mountDishRoutes(r router.Router, handler *dish.Handler, validator validation.Validator, signer jwt.Signer, maxBodySize int64) {
	r.Group("/api/dishes", func(gr router.Router) {
		gr.Get("/", handler.List)
		gr.Get("/{dishID}", handler.Find)
		gr.Post("/", handler.Create,
			staff.RequireToken(signer),
			middleware.DecodePayload[dish.CreateRequest](maxBodySize),
			middleware.ValidateInput[dish.CreateRequest](validator))
	}, middleware.CheckContentType)
}

func mountOrderRoutes(r router.Router, handler *order.Handler, validator validation.Validator, signer jwt.Signer, maxBodySize int64) {
	r.Group("/api/orders", func(gr router.Router) {
		gr.Get("/", handler.List)
		gr.Get("/revenue", handler.Revenue)
		gr.Get("/{orderID}", handler.Find)
		gr.Post("/", handler.Create,
			staff.RequireToken(signer),
			middleware.DecodePayload[order.CreateOrderRequest](maxBodySize),
			middleware.ValidateInput[order.CreateOrderRequest](validator))
		gr.Patch("/{orderID}/status", handler.UpdateStatus,
			staff.RequireToken(signer),
			middleware.DecodePayload[order.UpdateStatusRequest](maxBodySize),
			middleware.ValidateInput[order.UpdateStatusRequest](validator))
		gr.Put("/{orderID}/dishes", handler.ReplaceDishes,
			staff.RequireToken(signer),
			middleware.DecodePayload[order.ReplaceDishesRequest](maxBodySize),
			middleware.ValidateInput[order.ReplaceDishesRequest](validator))
		gr.Delete("/{orderID}", handler.Delete, staff.RequireToken(signer))
	}, middleware.CheckContentType)
}

func mountWebRoutes(r router.Router, handler *webui.Handler) {
	r.Group("/orders", func(gr router.Router) {
		gr.Get("/", handler.ShowOrders)
		gr.Get("/create", handler.ShowCreateForm)
		gr.Post("/create", handler.HandleCreate)
		gr.Get("/profit", handler.ShowProfit)
		gr.Get("/{orderID}/edit", handler.ShowEditForm)
		gr.Post("/{orderID}/edit", handler.HandleEdit)
		gr.Post("/{orderID}/status", handler.HandleStatus)
		gr.Post("/{orderID}/delete", handler.HandleDelete)
	})
}
