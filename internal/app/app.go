package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"comanda/internal/config"
	"comanda/internal/dish"
	"comanda/internal/order"
	"comanda/internal/platform/db"
	"comanda/internal/platform/events"
	"comanda/internal/platform/hash"
	"comanda/internal/platform/jwt"
	"comanda/internal/platform/router"
	"comanda/internal/platform/validation"
	"comanda/internal/staff"
	"comanda/internal/webui"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	db              *sql.DB
	signer          jwt.Signer
	validator       validation.Validator
	hasher          hash.Hasher
	router          router.Router
	txManager       db.TxManager
	publisher       events.Publisher
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() error {
	dishRepo := dish.NewRepository(a.db)
	dishSvc := dish.NewService(dishRepo)
	dishHandler := dish.NewHandler(dishSvc)

	orderRepo := order.NewRepository(a.db)
	orderSvc := order.NewService(orderRepo, dishSvc, a.txManager, a.publisher)
	orderHandler := order.NewHandler(orderSvc)

	staffRepo := staff.NewRepository(a.db)
	staffSvc := staff.NewService(staffRepo, a.hasher, a.signer, a.config.JWT)
	staffHandler := staff.NewHandler(staffSvc)

	uiHandler, err := webui.NewHandler(orderSvc, dishSvc)
	if err != nil {
		return fmt.Errorf("new webui handler: %w", err)
	}

	maxBodySize := a.config.Server.MaxBodyBytes
	mountStaffRoutes(a.router, staffHandler, a.validator, maxBodySize)
	mountDishRoutes(a.router, dishHandler, a.validator, a.signer, maxBodySize)
	mountOrderRoutes(a.router, orderHandler, a.validator, a.signer, maxBodySize)
	mountWebRoutes(a.router, uiHandler)
	return nil
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	if err := a.setupRoutes(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	if err := a.publisher.Close(); err != nil {
		slog.Error("failed to close event publisher", "reason", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		config:          cfg,
		db:              provider.DB,
		txManager:       provider.TxMgr,
		signer:          provider.Signer,
		validator:       provider.Validator,
		hasher:          provider.Hasher,
		router:          provider.Router,
		publisher:       provider.Publisher,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}
