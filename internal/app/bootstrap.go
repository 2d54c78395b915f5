package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"

	"comanda/internal/config"
	"comanda/internal/middleware"
	"comanda/internal/pkg/logging"
	"comanda/internal/pkg/message"
	"comanda/internal/platform/db"
)

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	appEnv := os.Getenv("ENV")
	if appEnv != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	logging.SetupLogger(appEnv, os.Getenv("LOG_LEVEL"), os.Stderr)

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	dbConn, err := db.NewPostgresDB(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(signalCtx, dbConn); err != nil {
		return err
	}

	const envKey = "KEY"
	securityKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	provider, err := NewProvider(cfg, securityKey, dbConn)
	if err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.RequestID,
		middleware.LogRequest,
	}

	application := New(cfg, provider, middlewares)
	if err := application.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return application.Shutdown()
}
