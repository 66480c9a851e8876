package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecommerce/api"
	"ecommerce/api/broker"
	"ecommerce/api/health"
	"ecommerce/api/historico"
	"ecommerce/api/importacao"
	"ecommerce/api/loja"
	"ecommerce/api/usuario"
	"ecommerce/api/varejista"
	"ecommerce/api/vinculo"
	"ecommerce/config"
	"ecommerce/pkg/logger"
)

// AppBuilder assembles the HTTP server. The database is dialed from config
// unless one is supplied with WithDB.
type AppBuilder struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{cfg: cfg}
}

func (b *AppBuilder) WithDB(db *gorm.DB) *AppBuilder {
	b.db = db
	return b
}

func (b *AppBuilder) Build(ctx context.Context) (*App, error) {
	log := logger.Get()
	log.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	db := b.db
	if db == nil {
		var err error
		if db, err = OpenDatabase(ctx, b.cfg, log); err != nil {
			return nil, err
		}
	}

	services, err := NewServices(db, b.cfg, log)
	if err != nil {
		return nil, err
	}

	var sqlDB *sql.DB
	if sqlDB, err = db.DB(); err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	router := api.NewRouter(b.cfg, api.Controllers{
		Health:     health.NewController(b.cfg, sqlDB),
		Broker:     broker.NewController(services.Broker),
		Varejista:  varejista.NewController(services.Varejista),
		Loja:       loja.NewController(services.Loja),
		Usuario:    usuario.NewController(services.Usuario),
		Vinculo:    vinculo.NewController(services.BrokerVarejista),
		Historico:  historico.NewController(services.Historico),
		Importacao: importacao.NewController(services.Importacao),
	})
	router.SetupRoutes()

	return &App{
		config: b.cfg,
		router: router,
		db:     db,
		server: &http.Server{
			Addr:         ":" + b.cfg.Server.Port,
			Handler:      router.GetEngine(),
			ReadTimeout:  b.cfg.Server.ReadTimeout,
			WriteTimeout: b.cfg.Server.WriteTimeout,
		},
	}, nil
}
