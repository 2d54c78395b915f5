package app

import (
	"database/sql"
	"log/slog"
	"os"

	"comanda/internal/config"
	"comanda/internal/platform/db"
	"comanda/internal/platform/events"
	"comanda/internal/platform/hash"
	"comanda/internal/platform/jwt"
	"comanda/internal/platform/router"
	"comanda/internal/platform/validation"
)

type Provider struct {
	DB        *sql.DB
	Signer    jwt.Signer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
	TxMgr     db.TxManager
	Publisher events.Publisher
}

func NewProvider(cfg *config.Config, securityKey string, dbConn *sql.DB) (*Provider, error) {
	publisher, err := newPublisher(cfg.Events)
	if err != nil {
		return nil, err
	}

	return &Provider{
		DB:        dbConn,
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, securityKey),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Router:    router.NewGoexpressRouter(),
		Validator: validation.NewGoPlaygroundValidator(),
		TxMgr:     db.NewSQLTxManager(dbConn),
		Publisher: publisher,
	}, nil
}

// newPublisher connects to the broker named by AMQP_URL. Order events are
// optional; without a broker the app runs with a no-op publisher.
func newPublisher(cfg *config.Events) (events.Publisher, error) {
	url, ok := os.LookupEnv("AMQP_URL")
	if !ok || url == "" {
		slog.Info("AMQP_URL is not set, order events are disabled.")
		return &events.NoopPublisher{}, nil
	}
	return events.NewAMQPPublisher(url, cfg)
}
